package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

var surfaceIDCounter atomic.Uint64

// Surface wraps one WebView. It is owned by exactly one tab.
type Surface struct {
	id   port.SurfaceID
	view *webkit.WebView

	mu        sync.RWMutex
	callbacks *port.SurfaceCallbacks
	handlers  []coreglib.SignalHandle
	destroyed bool
}

var _ port.RenderingSurface = (*Surface)(nil)

func newSurface(view *webkit.WebView) *Surface {
	s := &Surface{
		id:   port.SurfaceID(surfaceIDCounter.Add(1)),
		view: view,
	}
	s.connectSignals()
	return s
}

func (s *Surface) connectSignals() {
	s.handlers = append(s.handlers,
		s.view.Connect("notify::uri", func() {
			if cb := s.observers(); cb != nil && cb.OnURIChanged != nil {
				cb.OnURIChanged(s.view.URI())
			}
		}),
		s.view.Connect("notify::title", func() {
			if cb := s.observers(); cb != nil && cb.OnTitleChanged != nil {
				cb.OnTitleChanged(s.view.Title())
			}
		}),
		s.view.Connect("notify::estimated-load-progress", func() {
			if cb := s.observers(); cb != nil && cb.OnProgressChanged != nil {
				cb.OnProgressChanged(s.view.EstimatedLoadProgress())
			}
		}),
		s.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
			if event != webkit.LoadFinished {
				return
			}
			if cb := s.observers(); cb != nil && cb.OnProgressChanged != nil {
				cb.OnProgressChanged(1.0)
			}
		}),
	)
}

func (s *Surface) observers() *port.SurfaceCallbacks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.destroyed {
		return nil
	}
	return s.callbacks
}

// Widget returns the GTK widget to pack into a tab page.
func (s *Surface) Widget() gtk.Widgetter {
	return s.view
}

func (s *Surface) ID() port.SurfaceID {
	return s.id
}

func (s *Surface) LoadURI(ctx context.Context, uri string) error {
	if s.IsDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	logging.FromContext(ctx).Debug().
		Uint64("surface_id", uint64(s.id)).
		Str("uri", logging.TruncateURL(uri, 120)).
		Msg("load uri")
	s.view.LoadURI(uri)
	return nil
}

func (s *Surface) GoBack(context.Context) error {
	if s.IsDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	s.view.GoBack()
	return nil
}

func (s *Surface) GoForward(context.Context) error {
	if s.IsDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	s.view.GoForward()
	return nil
}

func (s *Surface) Reload(context.Context) error {
	if s.IsDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	s.view.Reload()
	return nil
}

func (s *Surface) CanGoBack() bool {
	return !s.IsDestroyed() && s.view.CanGoBack()
}

func (s *Surface) CanGoForward() bool {
	return !s.IsDestroyed() && s.view.CanGoForward()
}

func (s *Surface) URI() string {
	if s.IsDestroyed() {
		return ""
	}
	return s.view.URI()
}

func (s *Surface) Title() string {
	if s.IsDestroyed() {
		return ""
	}
	return s.view.Title()
}

func (s *Surface) IsLoading() bool {
	return !s.IsDestroyed() && s.view.IsLoading()
}

func (s *Surface) EstimatedProgress() float64 {
	if s.IsDestroyed() {
		return 0
	}
	return s.view.EstimatedLoadProgress()
}

func (s *Surface) SetCallbacks(callbacks *port.SurfaceCallbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = callbacks
}

func (s *Surface) IsDestroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}

// Destroy stops loading and detaches every signal handler.
// The widget itself is freed when its container drops it.
func (s *Surface) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.callbacks = nil
	handlers := s.handlers
	s.handlers = nil
	s.mu.Unlock()

	for _, h := range handlers {
		s.view.HandlerDisconnect(h)
	}
	s.view.StopLoading()
}
