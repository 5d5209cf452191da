// Package webkit adapts WebKitGTK 6 to the engine ports.
// Every function here must run on the GTK main thread.
package webkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// Engine creates browsing contexts and surfaces.
type Engine struct {
	opts port.PersistentContextOptions

	mu         sync.Mutex
	persistent *browsingContext
}

var _ port.Engine = (*Engine)(nil)

// NewEngine returns an engine whose persistent context lives under opts.
// The persistent context is created lazily on first use.
func NewEngine(opts port.PersistentContextOptions) *Engine {
	return &Engine{opts: opts}
}

// PersistentContext returns the process-wide context, creating it once.
func (e *Engine) PersistentContext(ctx context.Context) (port.BrowsingContext, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.persistent != nil {
		return e.persistent, nil
	}
	bc, err := newPersistentContext(ctx, e.opts)
	if err != nil {
		return nil, err
	}
	e.persistent = bc
	return bc, nil
}

// NewEphemeralContext allocates a fresh in-memory context.
func (e *Engine) NewEphemeralContext(ctx context.Context) (port.BrowsingContext, error) {
	return newEphemeralContext(ctx)
}

// NewSurface builds a WebView bound to spec.Context and configured from spec.
func (e *Engine) NewSurface(ctx context.Context, spec port.SurfaceSpec) (port.RenderingSurface, error) {
	log := logging.FromContext(ctx)

	bc, ok := spec.Context.(*browsingContext)
	if !ok || bc == nil {
		return nil, fmt.Errorf("surface requires a webkit browsing context, got %T", spec.Context)
	}
	if bc.session == nil {
		return nil, fmt.Errorf("browsing context already released")
	}

	policy := PolicyFor(spec)

	ucm := webkit.NewUserContentManager()
	if policy.ContentFilterCSS != "" {
		ucm.AddStyleSheet(webkit.NewUserStyleSheet(
			policy.ContentFilterCSS,
			webkit.UserContentInjectAllFrames,
			webkit.UserStyleLevelUser,
			nil,
			nil,
		))
	}

	view, err := newBoundWebView(bc.session, ucm)
	if err != nil {
		return nil, err
	}
	if err := applySettings(view, policy); err != nil {
		return nil, err
	}

	surface := newSurface(view)
	log.Debug().
		Uint64("surface_id", uint64(surface.ID())).
		Str("context", bc.kind.String()).
		Bool("hw_accel", policy.HardwareAcceleration).
		Bool("content_filter", policy.ContentFilterCSS != "").
		Msg("surface created")

	return surface, nil
}

func applySettings(view *webkit.WebView, policy SurfacePolicy) error {
	settings := view.Settings()
	if settings == nil {
		return fmt.Errorf("webkit: failed to get settings")
	}

	settings.SetUserAgent(policy.UserAgent)
	if policy.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	} else {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	}
	settings.SetEnableWebgl(policy.WebGL)
	settings.SetEnableMediaStream(policy.MediaStream)
	settings.SetEnableMediasource(policy.MediaSource)
	settings.SetEnableSmoothScrolling(policy.SmoothScrolling)
	settings.SetEnableDeveloperExtras(policy.DeveloperExtras)

	return nil
}
