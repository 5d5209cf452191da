package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bnema/burrow/internal/application/port"
	portmocks "github.com/bnema/burrow/internal/application/port/mocks"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testStylesheet = ".adsbygoogle { display: none !important; }"

// surfaceState backs a mocked surface so tests can drive its snapshot.
type surfaceState struct {
	mock      *portmocks.MockRenderingSurface
	spec      port.SurfaceSpec
	callbacks *port.SurfaceCallbacks
	uri       string
	title     string
	loading   bool
	progress  float64
	loaded    []string
	destroyed bool
}

type tabsHarness struct {
	t       *testing.T
	engine  *portmocks.MockEngine
	prefs   *portmocks.MockPreferenceStore
	strip   *portmocks.MockTabStrip
	chrome  *portmocks.MockBrowserChrome
	filter  *portmocks.MockContentFilter
	history *portmocks.MockHistoryRecorder

	preferences entity.Preferences
	surfaces    []*surfaceState
	ephemerals  []*portmocks.MockBrowsingContext
	released    int
	chromeLog   []string
	labels      map[entity.TabID]string
	selected    []entity.TabID
	removed     []entity.TabID
	manager     *TabLifecycleManager
}

func newTabsHarness(t *testing.T, withHistory bool) *tabsHarness {
	t.Helper()

	h := &tabsHarness{
		t:           t,
		engine:      portmocks.NewMockEngine(t),
		prefs:       portmocks.NewMockPreferenceStore(t),
		strip:       portmocks.NewMockTabStrip(t),
		chrome:      portmocks.NewMockBrowserChrome(t),
		filter:      portmocks.NewMockContentFilter(t),
		preferences: entity.DefaultPreferences(),
		labels:      make(map[entity.TabID]string),
	}

	h.prefs.EXPECT().Get().RunAndReturn(func() entity.Preferences {
		return h.preferences
	}).Maybe()
	h.filter.EXPECT().Stylesheet().Return(testStylesheet).Maybe()

	h.engine.EXPECT().NewEphemeralContext(mock.Anything).RunAndReturn(
		func(context.Context) (port.BrowsingContext, error) {
			bc := portmocks.NewMockBrowsingContext(t)
			bc.EXPECT().Kind().Return(port.ContextEphemeral).Maybe()
			bc.EXPECT().Release().Run(func() { h.released++ }).Return().Maybe()
			h.ephemerals = append(h.ephemerals, bc)
			return bc, nil
		}).Maybe()

	h.engine.EXPECT().NewSurface(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, spec port.SurfaceSpec) (port.RenderingSurface, error) {
			return h.newSurface(spec).mock, nil
		}).Maybe()

	h.strip.EXPECT().AppendTab(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(id entity.TabID, _ port.RenderingSurface, label string) (int, error) {
			h.labels[id] = label
			return len(h.labels) - 1, nil
		}).Maybe()
	h.strip.EXPECT().SelectTab(mock.Anything).Run(func(id entity.TabID) {
		h.selected = append(h.selected, id)
	}).Return().Maybe()
	h.strip.EXPECT().SetTabLabel(mock.Anything, mock.Anything).Run(func(id entity.TabID, label string) {
		h.labels[id] = label
	}).Return().Maybe()
	h.strip.EXPECT().RemoveTab(mock.Anything).Run(func(id entity.TabID) {
		h.removed = append(h.removed, id)
		delete(h.labels, id)
	}).Return().Maybe()

	h.chrome.EXPECT().SetAddress(mock.Anything).Run(func(uri string) {
		h.chromeLog = append(h.chromeLog, "address:"+uri)
	}).Return().Maybe()
	h.chrome.EXPECT().SetWindowTitle(mock.Anything).Run(func(title string) {
		h.chromeLog = append(h.chromeLog, "title:"+title)
	}).Return().Maybe()
	h.chrome.EXPECT().ShowProgress(mock.Anything).Run(func(fraction float64) {
		h.chromeLog = append(h.chromeLog, fmt.Sprintf("show:%.2f", fraction))
	}).Return().Maybe()
	h.chrome.EXPECT().HideProgress().Run(func() {
		h.chromeLog = append(h.chromeLog, "hide")
	}).Return().Maybe()

	deps := TabLifecycleDeps{
		Engine:      h.engine,
		Preferences: h.prefs,
		Strip:       h.strip,
		Chrome:      h.chrome,
		Filter:      h.filter,
		IDGenerator: sequentialIDs(),
	}
	if withHistory {
		h.history = portmocks.NewMockHistoryRecorder(t)
		deps.History = h.history
	}
	h.manager = NewTabLifecycleManager(deps)
	return h
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
}

func (h *tabsHarness) newSurface(spec port.SurfaceSpec) *surfaceState {
	s := &surfaceState{mock: portmocks.NewMockRenderingSurface(h.t), spec: spec}
	m := s.mock

	m.EXPECT().URI().RunAndReturn(func() string { return s.uri }).Maybe()
	m.EXPECT().Title().RunAndReturn(func() string { return s.title }).Maybe()
	m.EXPECT().IsLoading().RunAndReturn(func() bool { return s.loading }).Maybe()
	m.EXPECT().EstimatedProgress().RunAndReturn(func() float64 { return s.progress }).Maybe()
	m.EXPECT().SetCallbacks(mock.Anything).Run(func(cb *port.SurfaceCallbacks) {
		s.callbacks = cb
	}).Return().Maybe()
	m.EXPECT().LoadURI(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, uri string) error {
		s.loaded = append(s.loaded, uri)
		return nil
	}).Maybe()
	m.EXPECT().Destroy().Run(func() { s.destroyed = true }).Return().Maybe()

	h.surfaces = append(h.surfaces, s)
	return s
}

func (h *tabsHarness) create(incognito bool) *CreateTabOutput {
	h.t.Helper()
	out, err := h.manager.CreateTab(context.Background(), CreateTabInput{
		URL:       "https://example.com",
		Incognito: incognito,
	})
	require.NoError(h.t, err)
	return out
}

func (h *tabsHarness) expectPersistentOnce() *portmocks.MockBrowsingContext {
	bc := portmocks.NewMockBrowsingContext(h.t)
	bc.EXPECT().Kind().Return(port.ContextPersistent).Maybe()
	h.engine.EXPECT().PersistentContext(mock.Anything).Return(bc, nil).Once()
	return bc
}

func (h *tabsHarness) resetChromeLog() {
	h.chromeLog = nil
}

func TestCreateTab_RejectsEmptyURL(t *testing.T) {
	h := newTabsHarness(t, false)

	out, err := h.manager.CreateTab(context.Background(), CreateTabInput{})

	require.ErrorIs(t, err, ErrEmptyURL)
	assert.Nil(t, out)
	assert.Empty(t, h.surfaces)
	assert.Equal(t, 0, h.manager.TabCount())
}

func TestCreateTab_ReusesPersistentContext(t *testing.T) {
	h := newTabsHarness(t, false)
	persistent := h.expectPersistentOnce()

	first := h.create(false)
	second := h.create(false)

	require.Len(t, h.surfaces, 2)
	assert.Same(t, persistent, h.surfaces[0].spec.Context)
	assert.Same(t, persistent, h.surfaces[1].spec.Context)
	assert.False(t, first.Incognito)
	assert.False(t, second.Incognito)
	assert.Equal(t, 0, h.manager.LiveEphemeralContexts())
}

func TestCreateTab_IncognitoNeverUsesPersistentContext(t *testing.T) {
	h := newTabsHarness(t, false)

	for i := 0; i < 3; i++ {
		out := h.create(true)
		assert.True(t, out.Incognito)
	}

	h.engine.AssertNotCalled(t, "PersistentContext", mock.Anything)
	require.Len(t, h.ephemerals, 3)
	for i, s := range h.surfaces {
		assert.Same(t, h.ephemerals[i], s.spec.Context)
	}
	assert.Equal(t, 3, h.manager.LiveEphemeralContexts())
}

func TestCreateTab_AmnesiaModeForcesEphemeral(t *testing.T) {
	h := newTabsHarness(t, false)
	h.preferences.AmnesiaMode = true

	out := h.create(false)

	assert.True(t, out.Incognito)
	h.engine.AssertNotCalled(t, "PersistentContext", mock.Anything)
	require.Len(t, h.ephemerals, 1)
	assert.Equal(t, entity.IncognitoMarker+entity.LoadingLabel, h.labels[out.TabID])
}

func TestCreateTab_SurfaceSpecFollowsPreferences(t *testing.T) {
	tests := []struct {
		name    string
		adblock bool
		hwAccel bool
		wantCSS string
	}{
		{name: "adblock and gpu on", adblock: true, hwAccel: true, wantCSS: testStylesheet},
		{name: "adblock off", adblock: false, hwAccel: true, wantCSS: ""},
		{name: "gpu off", adblock: true, hwAccel: false, wantCSS: testStylesheet},
		{name: "both off", adblock: false, hwAccel: false, wantCSS: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTabsHarness(t, false)
			h.preferences.AdBlockEnabled = tt.adblock
			h.preferences.UseHardwareAcceleration = tt.hwAccel

			h.create(true)

			require.Len(t, h.surfaces, 1)
			assert.Equal(t, tt.wantCSS, h.surfaces[0].spec.ContentFilterCSS)
			assert.Equal(t, tt.hwAccel, h.surfaces[0].spec.HardwareAcceleration)
		})
	}
}

func TestCreateTab_ActivatesAndLoads(t *testing.T) {
	h := newTabsHarness(t, false)
	h.expectPersistentOnce()

	out := h.create(false)

	assert.Equal(t, entity.TabID("tab-1"), out.TabID)
	assert.Equal(t, 0, out.Index)
	assert.Equal(t, entity.LoadingLabel, h.labels[out.TabID])
	assert.Equal(t, []entity.TabID{out.TabID}, h.selected)
	assert.Equal(t, []string{"https://example.com"}, h.surfaces[0].loaded)
	assert.NotNil(t, h.surfaces[0].callbacks)

	surface, ok := h.manager.ActiveSurface()
	require.True(t, ok)
	assert.Same(t, h.surfaces[0].mock, surface)
}

func TestCreateTab_SurfaceFailureReleasesEphemeral(t *testing.T) {
	engine := portmocks.NewMockEngine(t)
	prefs := portmocks.NewMockPreferenceStore(t)
	ephemeral := portmocks.NewMockBrowsingContext(t)
	filter := portmocks.NewMockContentFilter(t)

	filter.EXPECT().Stylesheet().Return(testStylesheet).Once()
	prefs.EXPECT().Get().Return(entity.DefaultPreferences()).Once()
	engine.EXPECT().NewEphemeralContext(mock.Anything).Return(ephemeral, nil).Once()
	engine.EXPECT().NewSurface(mock.Anything, mock.Anything).Return(nil, errors.New("no display")).Once()
	ephemeral.EXPECT().Release().Return().Once()

	manager := NewTabLifecycleManager(TabLifecycleDeps{
		Engine:      engine,
		Preferences: prefs,
		Strip:       portmocks.NewMockTabStrip(t),
		Chrome:      portmocks.NewMockBrowserChrome(t),
		Filter:      filter,
		IDGenerator: sequentialIDs(),
	})

	out, err := manager.CreateTab(context.Background(), CreateTabInput{URL: "https://example.com", Incognito: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Nil(t, out)
	assert.Equal(t, 0, manager.TabCount())
	assert.Equal(t, 0, manager.LiveEphemeralContexts())
}

func TestCreateTab_PersistentContextFailureIsReturned(t *testing.T) {
	h := newTabsHarness(t, false)
	h.engine.EXPECT().PersistentContext(mock.Anything).Return(nil, errors.New("cookie store locked")).Once()

	_, err := h.manager.CreateTab(context.Background(), CreateTabInput{URL: "https://example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cookie store locked")
	assert.Empty(t, h.surfaces)
}

func TestTitleObserver_LabelTruncation(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		incognito bool
	}{
		{name: "empty title", title: "", incognito: false},
		{name: "empty title incognito", title: "", incognito: true},
		{name: "long title", title: strings.Repeat("a", 500), incognito: false},
		{name: "long title incognito", title: strings.Repeat("é", 500), incognito: true},
		{name: "short title", title: "Example", incognito: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTabsHarness(t, false)
			if !tt.incognito {
				h.expectPersistentOnce()
			}
			out := h.create(tt.incognito)
			h.resetChromeLog()

			h.surfaces[0].callbacks.OnTitleChanged(tt.title)

			label := h.labels[out.TabID]
			if tt.title == "" {
				assert.Equal(t, entity.LoadingTabLabel(tt.incognito), label)
				assert.Equal(t, []string{"title:Burrow"}, h.chromeLog)
				return
			}
			if tt.incognito {
				require.True(t, strings.HasPrefix(label, entity.IncognitoMarker))
				label = strings.TrimPrefix(label, entity.IncognitoMarker)
			}
			assert.LessOrEqual(t, utf8.RuneCountInString(label), entity.TabLabelMaxRunes)
			assert.True(t, strings.HasPrefix(tt.title, label))

			assert.Equal(t, []string{"title:" + tt.title + " - Burrow"}, h.chromeLog)
		})
	}
}

func TestTitleObserver_EmptyTitleKeepsLabel(t *testing.T) {
	h := newTabsHarness(t, false)
	out := h.create(true)
	onTitle := h.surfaces[0].callbacks.OnTitleChanged

	onTitle("Example")
	onTitle("")

	assert.Equal(t, entity.IncognitoMarker+"Example", h.labels[out.TabID])
	tab, ok := h.manager.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, "Example", tab.Title)
}

func TestObservers_InactiveTabLeavesChromeAlone(t *testing.T) {
	h := newTabsHarness(t, false)
	h.create(true)
	h.create(true)
	background := h.surfaces[0]
	h.resetChromeLog()

	background.callbacks.OnURIChanged("https://background.example")
	background.callbacks.OnProgressChanged(0.4)
	background.callbacks.OnTitleChanged("Background")

	assert.Empty(t, h.chromeLog)
	assert.Equal(t, entity.IncognitoMarker+"Background", h.labels["tab-1"])

	tabs := h.manager.Tabs()
	require.Len(t, tabs, 2)
	assert.Equal(t, "https://background.example", tabs[0].URI)
	assert.Equal(t, "Background", tabs[0].Title)
}

func TestObservers_ActiveTabUpdatesAddress(t *testing.T) {
	h := newTabsHarness(t, false)
	h.create(true)
	h.resetChromeLog()

	h.surfaces[0].callbacks.OnURIChanged("https://example.com/page")

	assert.Equal(t, []string{"address:https://example.com/page"}, h.chromeLog)
}

func TestProgressObserver_HiddenExactlyAtOne(t *testing.T) {
	h := newTabsHarness(t, false)
	h.create(true)
	onProgress := h.surfaces[0].callbacks.OnProgressChanged

	for cycle := 0; cycle < 3; cycle++ {
		h.resetChromeLog()
		for _, p := range []float64{0, 0.25, 0.5, 0.99, 1.0} {
			onProgress(p)
		}
		assert.Equal(t, []string{"show:0.00", "show:0.25", "show:0.50", "show:0.99", "hide"}, h.chromeLog,
			"cycle %d", cycle)
	}
}

func TestCloseTab_ReleasesEveryEphemeralContext(t *testing.T) {
	h := newTabsHarness(t, false)
	ctx := context.Background()

	for round := 0; round < 5; round++ {
		a := h.create(true)
		b := h.create(true)
		require.Equal(t, 2, h.manager.LiveEphemeralContexts())

		require.NoError(t, h.manager.CloseTab(ctx, a.TabID))
		require.NoError(t, h.manager.CloseTab(ctx, b.TabID))
		assert.Equal(t, 0, h.manager.LiveEphemeralContexts())
	}

	assert.Equal(t, 10, h.released)
	for _, s := range h.surfaces {
		assert.True(t, s.destroyed)
	}
}

func TestCloseTab_PersistentContextIsKept(t *testing.T) {
	h := newTabsHarness(t, false)
	h.expectPersistentOnce()
	ctx := context.Background()

	first := h.create(false)
	require.NoError(t, h.manager.CloseTab(ctx, first.TabID))
	h.create(false)

	assert.Equal(t, 0, h.released)
}

func TestCloseTab_ActiveTabHandsOverToNeighbour(t *testing.T) {
	h := newTabsHarness(t, false)
	ctx := context.Background()

	h.create(true)
	second := h.create(true)
	h.create(true)
	require.NoError(t, h.manager.SwitchActiveTab(ctx, second.TabID))

	h.surfaces[2].uri = "https://third.example"
	h.surfaces[2].title = "Third"
	h.surfaces[2].loading = true
	h.surfaces[2].progress = 0.3
	h.resetChromeLog()
	h.selected = nil

	require.NoError(t, h.manager.CloseTab(ctx, second.TabID))

	active, ok := h.manager.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, entity.TabID("tab-3"), active.ID)
	assert.Equal(t, []entity.TabID{"tab-3"}, h.selected)
	assert.Equal(t, []entity.TabID{second.TabID}, h.removed)
	assert.Equal(t, []string{"address:https://third.example", "title:Third - Burrow", "show:0.30"}, h.chromeLog)
	assert.Nil(t, h.surfaces[1].callbacks)
}

func TestCloseTab_LastTabResetsChrome(t *testing.T) {
	h := newTabsHarness(t, false)
	out := h.create(true)
	h.resetChromeLog()

	require.NoError(t, h.manager.CloseTab(context.Background(), out.TabID))

	assert.Equal(t, []string{"address:", "title:Burrow", "hide"}, h.chromeLog)
	_, ok := h.manager.ActiveSurface()
	assert.False(t, ok)
	assert.Equal(t, 0, h.manager.TabCount())
}

func TestCloseTab_UnknownIDIsNoop(t *testing.T) {
	h := newTabsHarness(t, false)
	h.create(true)
	h.resetChromeLog()

	require.NoError(t, h.manager.CloseTab(context.Background(), "missing"))

	assert.Empty(t, h.chromeLog)
	assert.Empty(t, h.removed)
	assert.Equal(t, 1, h.manager.TabCount())
}

func TestCloseTab_LateSignalsAreIgnored(t *testing.T) {
	h := newTabsHarness(t, false)
	out := h.create(true)
	callbacks := h.surfaces[0].callbacks
	require.NoError(t, h.manager.CloseTab(context.Background(), out.TabID))
	h.resetChromeLog()

	callbacks.OnTitleChanged("late")
	callbacks.OnURIChanged("https://late.example")
	callbacks.OnProgressChanged(0.5)

	assert.Empty(t, h.chromeLog)
	assert.NotContains(t, h.labels, out.TabID)
}

func TestSwitchActiveTab_SyncsChromeFromSurface(t *testing.T) {
	h := newTabsHarness(t, false)
	ctx := context.Background()
	first := h.create(true)
	h.create(true)

	h.surfaces[0].uri = "https://first.example"
	h.surfaces[0].title = "First"
	h.surfaces[0].loading = false
	h.resetChromeLog()

	require.NoError(t, h.manager.SwitchActiveTab(ctx, first.TabID))
	require.NoError(t, h.manager.SwitchActiveTab(ctx, first.TabID))

	synced := []string{"address:https://first.example", "title:First - Burrow", "hide"}
	assert.Equal(t, append(append([]string{}, synced...), synced...), h.chromeLog)

	active, ok := h.manager.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, first.TabID, active.ID)
}

func TestSwitchActiveTab_UnknownID(t *testing.T) {
	h := newTabsHarness(t, false)

	err := h.manager.SwitchActiveTab(context.Background(), "missing")

	require.ErrorIs(t, err, ErrTabNotFound)
}

func TestObservers_HistoryOnlyForPersistentTabs(t *testing.T) {
	h := newTabsHarness(t, true)
	h.expectPersistentOnce()

	h.history.EXPECT().RecordVisit(mock.Anything, "https://persistent.example").Return().Once()
	h.history.EXPECT().RecordTitle(mock.Anything, "https://persistent.example", "Persistent").Return().Once()

	h.create(false)
	h.create(true)

	persistent := h.surfaces[0]
	persistent.uri = "https://persistent.example"
	persistent.callbacks.OnURIChanged("https://persistent.example")
	persistent.callbacks.OnTitleChanged("Persistent")

	incognito := h.surfaces[1]
	incognito.uri = "https://secret.example"
	incognito.callbacks.OnURIChanged("https://secret.example")
	incognito.callbacks.OnTitleChanged("Secret")
}

func TestCloseAll_TearsDownEveryTab(t *testing.T) {
	h := newTabsHarness(t, false)
	h.create(true)
	h.create(true)
	h.create(true)

	h.manager.CloseAll(context.Background())

	assert.Equal(t, 0, h.manager.TabCount())
	assert.Equal(t, 0, h.manager.LiveEphemeralContexts())
	assert.Equal(t, 3, h.released)
}
