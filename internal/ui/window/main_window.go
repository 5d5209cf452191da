// Package window provides the GTK browser window.
package window

import (
	"context"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
	"github.com/bnema/burrow/internal/ui/component"
	"github.com/bnema/burrow/internal/ui/layout"
)

const (
	defaultWidth  = 1200
	defaultHeight = 800
)

// Options configures the initial window state.
type Options struct {
	Title          string
	ShowHomeButton bool
}

// embeddable is implemented by surfaces that render into a GTK widget.
type embeddable interface {
	Widget() gtk.Widgetter
}

type page struct {
	id    entity.TabID
	child gtk.Widgetter
	label *component.TabLabel
}

// MainWindow is the browser window: toolbar, progress bar and notebook.
// It implements port.TabStrip and port.BrowserChrome.
type MainWindow struct {
	window   *gtk.ApplicationWindow
	rootBox  *gtk.Box
	toolbar  *Toolbar
	progress *component.ProgressBar
	notebook *gtk.Notebook
	factory  layout.WidgetFactory

	pages    map[entity.TabID]*page
	byNative map[uintptr]entity.TabID
	handlers *Handlers

	// programmatic is non-zero while the window itself changes pages,
	// so switch-page only reports user selections.
	programmatic int

	logger zerolog.Logger
}

var (
	_ port.TabStrip      = (*MainWindow)(nil)
	_ port.BrowserChrome = (*MainWindow)(nil)
)

// New creates the main browser window.
func New(ctx context.Context, app *gtk.Application, opts Options) (*MainWindow, error) {
	mw := &MainWindow{
		factory:  layout.NewGtkWidgetFactory(),
		pages:    make(map[entity.TabID]*page),
		byNative: make(map[uintptr]entity.TabID),
		logger:   logging.Component(ctx, "main-window"),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(opts.Title)
	mw.window.SetDefaultSize(defaultWidth, defaultHeight)

	mw.rootBox = gtk.NewBox(gtk.OrientationVertical, 0)
	if mw.rootBox == nil {
		return nil, ErrWidgetCreationFailed("rootBox")
	}
	mw.rootBox.SetHExpand(true)
	mw.rootBox.SetVExpand(true)

	mw.toolbar = newToolbar(opts.ShowHomeButton)
	mw.handlers = mw.toolbar.handlers

	mw.progress = component.NewProgressBar(mw.factory)

	mw.notebook = gtk.NewNotebook()
	if mw.notebook == nil {
		return nil, ErrWidgetCreationFailed("notebook")
	}
	mw.notebook.SetScrollable(true)
	mw.notebook.SetHExpand(true)
	mw.notebook.SetVExpand(true)
	mw.connectNotebook()

	mw.rootBox.Append(mw.toolbar.Widget())
	mw.rootBox.Append(mw.progress.Widget().GtkWidget())
	mw.rootBox.Append(mw.notebook)
	mw.window.SetChild(mw.rootBox)

	mw.logger.Debug().
		Int("width", defaultWidth).
		Int("height", defaultHeight).
		Bool("home_button", opts.ShowHomeButton).
		Msg("window created")

	return mw, nil
}

func (mw *MainWindow) connectNotebook() {
	mw.notebook.ConnectSwitchPage(func(child gtk.Widgetter, _ uint) {
		if mw.programmatic > 0 || mw.handlers.OnSwitchTab == nil {
			return
		}
		if id, ok := mw.idFor(child); ok {
			mw.handlers.OnSwitchTab(id)
		}
	})

	mw.notebook.ConnectPageReordered(func(child gtk.Widgetter, pageNum uint) {
		if mw.handlers.OnReorderTab == nil {
			return
		}
		if id, ok := mw.idFor(child); ok {
			mw.handlers.OnReorderTab(id, int(pageNum))
		}
	})
}

func (mw *MainWindow) idFor(child gtk.Widgetter) (entity.TabID, bool) {
	if child == nil {
		return "", false
	}
	id, ok := mw.byNative[coreglib.InternObject(child).Native()]
	return id, ok
}

func (mw *MainWindow) withoutSignals(fn func()) {
	mw.programmatic++
	defer func() { mw.programmatic-- }()
	fn()
}

// Bind installs the action handlers. It replaces any previous binding.
func (mw *MainWindow) Bind(h Handlers) {
	*mw.handlers = h
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// Toolbar returns the navigation toolbar.
func (mw *MainWindow) Toolbar() *Toolbar {
	return mw.toolbar
}

// --- port.TabStrip ---

// AppendTab adds a notebook page showing surface.
func (mw *MainWindow) AppendTab(id entity.TabID, surface port.RenderingSurface, label string) (int, error) {
	if _, exists := mw.pages[id]; exists {
		return -1, ErrDuplicateTab
	}
	e, ok := surface.(embeddable)
	if !ok {
		return -1, ErrSurfaceNotEmbeddable
	}

	child := e.Widget()
	base := gtk.BaseWidget(child)
	base.SetHExpand(true)
	base.SetVExpand(true)

	tabLabel := component.NewTabLabel(mw.factory, label, func() {
		if mw.handlers.OnCloseTab != nil {
			mw.handlers.OnCloseTab(id)
		}
	})

	var index int
	mw.withoutSignals(func() {
		index = mw.notebook.AppendPage(child, tabLabel.Widget().GtkWidget())
	})
	if index < 0 {
		tabLabel.Destroy()
		return -1, ErrWidgetCreationFailed("notebook page")
	}
	mw.notebook.SetTabReorderable(child, true)

	mw.pages[id] = &page{id: id, child: child, label: tabLabel}
	mw.byNative[coreglib.InternObject(child).Native()] = id

	mw.logger.Debug().Str("tab_id", string(id)).Int("index", index).Msg("page appended")
	return index, nil
}

// RemoveTab drops the page of id.
func (mw *MainWindow) RemoveTab(id entity.TabID) {
	p, ok := mw.pages[id]
	if !ok {
		return
	}
	delete(mw.pages, id)
	delete(mw.byNative, coreglib.InternObject(p.child).Native())

	if num := mw.notebook.PageNum(p.child); num >= 0 {
		mw.withoutSignals(func() {
			mw.notebook.RemovePage(num)
		})
	}
	p.label.Destroy()

	mw.logger.Debug().Str("tab_id", string(id)).Msg("page removed")
}

// SelectTab makes id the visible page.
func (mw *MainWindow) SelectTab(id entity.TabID) {
	p, ok := mw.pages[id]
	if !ok {
		return
	}
	num := mw.notebook.PageNum(p.child)
	if num < 0 {
		return
	}
	mw.withoutSignals(func() {
		mw.notebook.SetCurrentPage(num)
	})
}

// SetTabLabel replaces the label of id.
func (mw *MainWindow) SetTabLabel(id entity.TabID, label string) {
	if p, ok := mw.pages[id]; ok {
		p.label.SetText(label)
	}
}

// --- port.BrowserChrome ---

// SetAddress shows uri in the address entry.
func (mw *MainWindow) SetAddress(uri string) {
	mw.toolbar.SetAddress(uri)
}

// SetWindowTitle updates the window title.
// The title is capped at 255 characters for display.
func (mw *MainWindow) SetWindowTitle(title string) {
	const maxTitleLen = 255
	title = entity.TruncateRunes(title, maxTitleLen)
	mw.window.SetTitle(title)
}

// ShowProgress shows the global progress bar at fraction.
func (mw *MainWindow) ShowProgress(fraction float64) {
	mw.progress.Show()
	mw.progress.SetProgress(fraction)
}

// HideProgress hides the global progress bar.
func (mw *MainWindow) HideProgress() {
	mw.progress.Hide()
}

// SetHomeButtonVisible toggles the toolbar home button.
func (mw *MainWindow) SetHomeButtonVisible(visible bool) {
	mw.toolbar.SetHomeVisible(visible)
}
