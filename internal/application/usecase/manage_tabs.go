package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
)

var (
	// ErrEmptyURL is returned when a tab is requested without an initial URL.
	ErrEmptyURL = errors.New("initial URL is required")
	// ErrTabNotFound is returned when an operation targets an unknown tab.
	ErrTabNotFound = errors.New("tab not found")
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// TabLifecycleDeps holds the collaborators of the tab lifecycle manager.
type TabLifecycleDeps struct {
	Engine      port.Engine
	Preferences port.PreferenceStore
	Strip       port.TabStrip
	Chrome      port.BrowserChrome
	Filter      port.ContentFilter
	// History is optional; nil disables visit recording.
	History     port.HistoryRecorder
	IDGenerator IDGenerator
	// AppName suffixes the window title. Defaults to "Burrow".
	AppName string
}

// tabRuntime is the engine side of one open tab.
type tabRuntime struct {
	tab       *entity.Tab
	surface   port.RenderingSurface
	ephemeral port.BrowsingContext
}

// TabLifecycleManager creates and destroys tabs together with their
// rendering surfaces and browsing contexts.
// It runs on the UI main loop and holds no locks.
type TabLifecycleManager struct {
	engine  port.Engine
	prefs   port.PreferenceStore
	strip   port.TabStrip
	chrome  port.BrowserChrome
	filter  port.ContentFilter
	history port.HistoryRecorder
	newID   IDGenerator
	appName string

	tabs       *entity.TabList
	runtimes   map[entity.TabID]*tabRuntime
	persistent port.BrowsingContext
}

// NewTabLifecycleManager creates a manager with an empty tab list.
func NewTabLifecycleManager(deps TabLifecycleDeps) *TabLifecycleManager {
	appName := deps.AppName
	if appName == "" {
		appName = "Burrow"
	}
	return &TabLifecycleManager{
		engine:   deps.Engine,
		prefs:    deps.Preferences,
		strip:    deps.Strip,
		chrome:   deps.Chrome,
		filter:   deps.Filter,
		history:  deps.History,
		newID:    deps.IDGenerator,
		appName:  appName,
		tabs:     entity.NewTabList(),
		runtimes: make(map[entity.TabID]*tabRuntime),
	}
}

// CreateTabInput contains parameters for creating a new tab.
type CreateTabInput struct {
	URL       string
	Incognito bool
}

// CreateTabOutput contains the result of tab creation.
type CreateTabOutput struct {
	TabID entity.TabID
	Index int
	// Incognito is the effective flag, true under amnesia mode as well.
	Incognito bool
}

// CreateTab builds a surface in the right browsing context, appends it to
// the notebook, activates it and starts loading URL.
func (m *TabLifecycleManager) CreateTab(ctx context.Context, input CreateTabInput) (*CreateTabOutput, error) {
	if input.URL == "" {
		return nil, ErrEmptyURL
	}

	prefs := m.prefs.Get()
	incognito := input.Incognito || prefs.AmnesiaMode

	log := logging.FromContext(ctx)
	log.Debug().
		Bool("incognito", incognito).
		Bool("amnesia", prefs.AmnesiaMode).
		Str("url", logging.TruncateURL(input.URL, logURLMaxLen)).
		Msg("creating tab")

	browsingCtx, ephemeral, err := m.contextFor(ctx, incognito)
	if err != nil {
		return nil, err
	}

	spec := port.SurfaceSpec{
		Context:              browsingCtx,
		HardwareAcceleration: prefs.UseHardwareAcceleration,
	}
	if prefs.AdBlockEnabled && m.filter != nil {
		spec.ContentFilterCSS = m.filter.Stylesheet()
	}

	surface, err := m.engine.NewSurface(ctx, spec)
	if err != nil {
		if ephemeral != nil {
			ephemeral.Release()
		}
		return nil, fmt.Errorf("failed to create rendering surface: %w", err)
	}

	tab := entity.NewTab(entity.TabID(m.newID()), incognito)
	m.tabs.Add(tab)

	index, err := m.strip.AppendTab(tab.ID, surface, entity.LoadingTabLabel(incognito))
	if err != nil {
		m.tabs.Remove(tab.ID)
		surface.Destroy()
		if ephemeral != nil {
			ephemeral.Release()
		}
		return nil, fmt.Errorf("failed to append tab page: %w", err)
	}

	rt := &tabRuntime{tab: tab, surface: surface, ephemeral: ephemeral}
	m.runtimes[tab.ID] = rt
	surface.SetCallbacks(m.observersFor(ctx, tab.ID))

	m.activate(rt)

	if err := surface.LoadURI(ctx, input.URL); err != nil {
		log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("initial load failed")
	}

	log.Info().
		Str("tab_id", string(tab.ID)).
		Int("index", index).
		Bool("incognito", incognito).
		Msg("tab created")

	return &CreateTabOutput{TabID: tab.ID, Index: index, Incognito: incognito}, nil
}

// contextFor returns the browsing context for a new tab. The second value
// is non-nil when the tab owns a freshly allocated ephemeral context.
func (m *TabLifecycleManager) contextFor(
	ctx context.Context, incognito bool,
) (port.BrowsingContext, port.BrowsingContext, error) {
	if incognito {
		ephemeral, err := m.engine.NewEphemeralContext(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create ephemeral context: %w", err)
		}
		return ephemeral, ephemeral, nil
	}

	if m.persistent == nil {
		persistent, err := m.engine.PersistentContext(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create persistent context: %w", err)
		}
		m.persistent = persistent
	}
	return m.persistent, nil, nil
}

func (m *TabLifecycleManager) observersFor(ctx context.Context, id entity.TabID) *port.SurfaceCallbacks {
	return &port.SurfaceCallbacks{
		OnURIChanged: func(uri string) {
			m.handleURIChanged(ctx, id, uri)
		},
		OnTitleChanged: func(title string) {
			m.handleTitleChanged(ctx, id, title)
		},
		OnProgressChanged: func(progress float64) {
			m.handleProgressChanged(id, progress)
		},
	}
}

func (m *TabLifecycleManager) handleURIChanged(ctx context.Context, id entity.TabID, uri string) {
	rt, ok := m.runtimes[id]
	if !ok {
		return
	}
	rt.tab.URI = uri

	if m.tabs.IsActive(id) {
		m.chrome.SetAddress(uri)
	}
	if m.history != nil && !rt.tab.Incognito {
		m.history.RecordVisit(ctx, uri)
	}
}

func (m *TabLifecycleManager) handleTitleChanged(ctx context.Context, id entity.TabID, title string) {
	rt, ok := m.runtimes[id]
	if !ok {
		return
	}
	// Pages without a title keep their current label.
	if title != "" {
		rt.tab.Title = title
		m.strip.SetTabLabel(id, rt.tab.Label())
	}

	if m.tabs.IsActive(id) {
		m.chrome.SetWindowTitle(m.WindowTitle(title))
	}
	if m.history != nil && !rt.tab.Incognito && title != "" {
		m.history.RecordTitle(ctx, rt.surface.URI(), title)
	}
}

func (m *TabLifecycleManager) handleProgressChanged(id entity.TabID, progress float64) {
	if _, ok := m.runtimes[id]; !ok || !m.tabs.IsActive(id) {
		return
	}
	m.showProgress(progress)
}

func (m *TabLifecycleManager) showProgress(progress float64) {
	if progress >= 1.0 {
		m.chrome.HideProgress()
		return
	}
	m.chrome.ShowProgress(progress)
}

// WindowTitle formats the window title for a page title.
func (m *TabLifecycleManager) WindowTitle(title string) string {
	if title == "" {
		return m.appName
	}
	return title + " - " + m.appName
}

// CloseTab tears a tab down. Unknown ids are ignored.
func (m *TabLifecycleManager) CloseTab(ctx context.Context, id entity.TabID) error {
	rt, ok := m.runtimes[id]
	if !ok {
		return nil
	}

	log := logging.FromContext(ctx)
	wasActive := m.tabs.IsActive(id)

	m.tabs.Remove(id)
	delete(m.runtimes, id)
	m.strip.RemoveTab(id)

	rt.surface.SetCallbacks(nil)
	rt.surface.Destroy()
	if rt.ephemeral != nil {
		rt.ephemeral.Release()
	}

	log.Info().
		Str("tab_id", string(id)).
		Bool("incognito", rt.tab.Incognito).
		Int("remaining", m.tabs.Count()).
		Msg("tab closed")

	if !wasActive {
		return nil
	}

	if m.TabCount() == 0 {
		m.chrome.SetAddress("")
		m.chrome.SetWindowTitle(m.appName)
		m.chrome.HideProgress()
		return nil
	}
	next, ok := m.runtimes[m.tabs.ActiveTabID]
	if !ok {
		return nil
	}
	m.strip.SelectTab(next.tab.ID)
	m.syncChrome(next)
	return nil
}

// SwitchActiveTab makes id the active tab and re-synchronizes the chrome
// from its surface.
func (m *TabLifecycleManager) SwitchActiveTab(ctx context.Context, id entity.TabID) error {
	rt, ok := m.runtimes[id]
	if !ok {
		return fmt.Errorf("switch to %s: %w", id, ErrTabNotFound)
	}

	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("switching active tab")

	m.tabs.ActiveTabID = id
	m.syncChrome(rt)
	return nil
}

func (m *TabLifecycleManager) activate(rt *tabRuntime) {
	m.tabs.ActiveTabID = rt.tab.ID
	m.strip.SelectTab(rt.tab.ID)
	m.syncChrome(rt)
}

func (m *TabLifecycleManager) syncChrome(rt *tabRuntime) {
	m.chrome.SetAddress(rt.surface.URI())
	m.chrome.SetWindowTitle(m.WindowTitle(rt.surface.Title()))
	if rt.surface.IsLoading() {
		m.showProgress(rt.surface.EstimatedProgress())
		return
	}
	m.chrome.HideProgress()
}

// MoveTab records a notebook reorder.
func (m *TabLifecycleManager) MoveTab(id entity.TabID, position int) bool {
	return m.tabs.Move(id, position)
}

// ActiveSurface returns the surface of the active tab.
func (m *TabLifecycleManager) ActiveSurface() (port.RenderingSurface, bool) {
	rt, ok := m.runtimes[m.tabs.ActiveTabID]
	if !ok {
		return nil, false
	}
	return rt.surface, true
}

// ActiveTab returns a snapshot of the active tab.
func (m *TabLifecycleManager) ActiveTab() (entity.Tab, bool) {
	tab := m.tabs.ActiveTab()
	if tab == nil {
		return entity.Tab{}, false
	}
	return *tab, true
}

// Tabs returns snapshots of the open tabs in notebook order.
func (m *TabLifecycleManager) Tabs() []entity.Tab {
	out := make([]entity.Tab, 0, m.tabs.Count())
	for _, tab := range m.tabs.Tabs {
		out = append(out, *tab)
	}
	return out
}

// TabCount returns the number of open tabs.
func (m *TabLifecycleManager) TabCount() int {
	return m.tabs.Count()
}

// LiveEphemeralContexts counts ephemeral contexts owned by open tabs.
func (m *TabLifecycleManager) LiveEphemeralContexts() int {
	n := 0
	for _, rt := range m.runtimes {
		if rt.ephemeral != nil {
			n++
		}
	}
	return n
}

// CloseAll tears down every tab, used on window close.
func (m *TabLifecycleManager) CloseAll(ctx context.Context) {
	for _, tab := range m.Tabs() {
		_ = m.CloseTab(ctx, tab.ID)
	}
}
