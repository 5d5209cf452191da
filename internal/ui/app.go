package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/burrow/internal/application/usecase"
	"github.com/bnema/burrow/internal/domain/build"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/domain/url"
	"github.com/bnema/burrow/internal/logging"
	"github.com/bnema/burrow/internal/ui/dialog"
	"github.com/bnema/burrow/internal/ui/mainloop"
	"github.com/bnema/burrow/internal/ui/theme"
	"github.com/bnema/burrow/internal/ui/window"
)

const preferencesChangedKey = "preferences"

// App is the GTK application: one window, its tabs and the settings dialog.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	mainWindow *window.MainWindow
	tabs       *usecase.TabLifecycleManager
	navigate   *usecase.NavigateUseCase
	settings   *usecase.ApplySettingsUseCase
	coalescer  *mainloop.Coalescer

	// ID generator for tabs
	idCounter uint64
	idMu      sync.Mutex

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if deps.Theme == nil {
		deps.Theme = theme.NewManager(deps.Ctx, theme.DefaultDarkPalette())
	}

	return &App{
		deps:      deps,
		coalescer: mainloop.NewIdleCoalescer(),
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	ctx, a.cancel = context.WithCancelCause(ctx)

	a.gtkApp = gtk.NewApplication(build.AppID, gio.ApplicationNonUnique)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	a.deps.Theme.ApplyToDisplay(ctx, gdk.DisplayGetDefault())

	prefs := a.deps.Preferences.Get()
	mw, err := window.New(ctx, a.gtkApp, window.Options{
		Title:          build.AppName,
		ShowHomeButton: prefs.ShowHomeButton,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create main window")
	}
	a.mainWindow = mw

	a.initUseCases()
	a.bindHandlers(ctx)
	a.initActions(ctx)
	a.initConfigWatcher(ctx)
	a.createInitialTab(ctx)

	mw.Show()
}

func (a *App) initUseCases() {
	a.tabs = usecase.NewTabLifecycleManager(usecase.TabLifecycleDeps{
		Engine:      a.deps.Engine,
		Preferences: a.deps.Preferences,
		Strip:       a.mainWindow,
		Chrome:      a.mainWindow,
		Filter:      a.deps.Filter,
		History:     a.deps.History,
		IDGenerator: a.generateID,
		AppName:     build.AppName,
	})
	a.navigate = usecase.NewNavigateUseCase(a.tabs, a.deps.Preferences)
	a.settings = usecase.NewApplySettingsUseCase(a.deps.Preferences, a.mainWindow)
}

func (a *App) bindHandlers(ctx context.Context) {
	log := logging.FromContext(ctx)

	logErr := func(action string, err error) {
		if err != nil {
			log.Warn().Err(err).Str("action", action).Msg("action failed")
		}
	}

	a.mainWindow.Bind(window.Handlers{
		OnBack:    func() { logErr("back", a.navigate.Back(ctx)) },
		OnForward: func() { logErr("forward", a.navigate.Forward(ctx)) },
		OnReload:  func() { logErr("reload", a.navigate.Reload(ctx)) },
		OnHome:    func() { logErr("home", a.navigate.Home(ctx)) },
		OnSubmit: func(input string) {
			_, err := a.navigate.Submit(ctx, input)
			logErr("submit", err)
		},
		OnNewTab:          func() { a.openTab(ctx, "", false) },
		OnNewIncognitoTab: func() { a.openTab(ctx, "", true) },
		OnSettings:        func() { a.showSettings(ctx) },
		OnCloseTab: func(id entity.TabID) {
			logErr("close-tab", a.tabs.CloseTab(ctx, id))
		},
		OnSwitchTab: func(id entity.TabID) {
			logErr("switch-tab", a.tabs.SwitchActiveTab(ctx, id))
		},
		OnReorderTab: func(id entity.TabID, position int) {
			a.tabs.MoveTab(id, position)
		},
	})
}

// initActions registers window actions and their keyboard accelerators.
func (a *App) initActions(ctx context.Context) {
	actions := []struct {
		name   string
		accels []string
		run    func()
	}{
		{"new-tab", []string{"<Control>t"}, func() { a.openTab(ctx, "", false) }},
		{"new-incognito-tab", []string{"<Control><Shift>n"}, func() { a.openTab(ctx, "", true) }},
		{"close-tab", []string{"<Control>w"}, func() { a.closeActiveTab(ctx) }},
		{"reload", []string{"<Control>r", "F5"}, func() { _ = a.navigate.Reload(ctx) }},
		{"back", []string{"<Alt>Left"}, func() { _ = a.navigate.Back(ctx) }},
		{"forward", []string{"<Alt>Right"}, func() { _ = a.navigate.Forward(ctx) }},
		{"home", []string{"<Alt>Home"}, func() { _ = a.navigate.Home(ctx) }},
		{"focus-address", []string{"<Control>l"}, func() { a.mainWindow.Toolbar().FocusAddress() }},
		{"settings", []string{"<Control>comma"}, func() { a.showSettings(ctx) }},
	}

	for _, act := range actions {
		run := act.run
		action := gio.NewSimpleAction(act.name, nil)
		action.ConnectActivate(func(_ *glib.Variant) { run() })
		a.mainWindow.Window().AddAction(action)
		a.gtkApp.SetAccelsForAction("win."+act.name, act.accels)
	}
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if err := a.deps.Preferences.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to start preferences watcher")
		return
	}

	// Open tabs keep their policy; only the toolbar follows external edits.
	a.deps.Preferences.OnChange(func(prefs entity.Preferences) {
		a.coalescer.Post(preferencesChangedKey, func() {
			a.mainWindow.SetHomeButtonVisible(prefs.ShowHomeButton)
		})
	})

	log.Debug().Msg("preferences watcher initialized")
}

func (a *App) createInitialTab(ctx context.Context) {
	target := a.deps.InitialURL
	if target != "" {
		target = url.Resolve(target, a.deps.Preferences.Get().SearchEngineURL)
	}
	a.openTab(ctx, target, a.deps.InitialIncognito)
}

// openTab opens target, or the homepage when target is empty.
func (a *App) openTab(ctx context.Context, target string, incognito bool) {
	log := logging.FromContext(ctx)

	if target == "" {
		target = a.deps.Preferences.Get().Homepage
	}
	out, err := a.tabs.CreateTab(ctx, usecase.CreateTabInput{URL: target, Incognito: incognito})
	if err != nil {
		log.Error().Err(err).Bool("incognito", incognito).Msg("failed to open tab")
		return
	}
	log.Debug().Str("tab_id", string(out.TabID)).Int("index", out.Index).Msg("tab opened")
}

func (a *App) closeActiveTab(ctx context.Context) {
	tab, ok := a.tabs.ActiveTab()
	if !ok {
		return
	}
	if err := a.tabs.CloseTab(ctx, tab.ID); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close tab")
	}
}

func (a *App) showSettings(ctx context.Context) {
	d := dialog.NewSettingsDialog(
		ctx,
		&a.mainWindow.Window().Window,
		a.deps.Preferences.Get(),
		a.settings,
		a.deps.BuildInfo,
	)
	d.Present()
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.coalescer.Destroy()
	if a.tabs != nil {
		a.tabs.CloseAll(ctx)
	}

	a.cancel(errors.New("application shutdown"))
	log.Info().Msg("application shutdown complete")
}

// generateID generates a unique tab ID.
func (a *App) generateID() string {
	a.idMu.Lock()
	defer a.idMu.Unlock()
	a.idCounter++
	return fmt.Sprintf("t%d", a.idCounter)
}

// Quit requests the application to quit.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// RunWithArgs is a convenience function that creates and runs an App.
func RunWithArgs(ctx context.Context, deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		log := logging.FromContext(ctx)
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(ctx, os.Args[:1])
}
