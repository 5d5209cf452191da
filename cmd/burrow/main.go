package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/burrow/internal/application/port"
	"github.com/bnema/burrow/internal/application/usecase"
	"github.com/bnema/burrow/internal/cli/cmd"
	"github.com/bnema/burrow/internal/domain/build"
	"github.com/bnema/burrow/internal/infrastructure/config"
	"github.com/bnema/burrow/internal/infrastructure/filtering"
	"github.com/bnema/burrow/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/burrow/internal/infrastructure/webkit"
	"github.com/bnema/burrow/internal/logging"
	"github.com/bnema/burrow/internal/ui"
	"github.com/bnema/burrow/internal/ui/mainloop"
	"github.com/bnema/burrow/internal/ui/theme"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

const envCookiePolicy = "BURROW_COOKIE_POLICY"

// guiArgs is what main extracts from os.Args before GTK takes over.
type guiArgs struct {
	initialURL string
	incognito  bool
}

func main() {
	enableCrashForensics()

	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	// Run GUI mode for bare invocation and the browse command
	if args, ok := parseGUIArgs(os.Args[1:]); ok {
		os.Args = os.Args[:1]
		os.Exit(runGUI(info, args))
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(info)
	cmd.Execute()
}

// parseGUIArgs recognizes `burrow` and `burrow browse [url] [--incognito]`.
func parseGUIArgs(args []string) (guiArgs, bool) {
	if len(args) == 0 {
		return guiArgs{}, true
	}
	if args[0] != "browse" {
		return guiArgs{}, false
	}

	var out guiArgs
	for _, arg := range args[1:] {
		switch arg {
		case "--incognito", "-i":
			out.incognito = true
		case "--help", "-h":
			return guiArgs{}, false
		default:
			if out.initialURL == "" {
				out.initialURL = arg
			}
		}
	}
	return out, true
}

func runGUI(info build.Info, args guiArgs) int {
	runtime.LockOSThread()

	ctx, logCleanup := initStartupContext()
	defer logCleanup()
	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)

	webkit.ApplyProcessEnvironment(*log)

	prefs, db, err := loadPreferencesAndHistory(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize")
		return 1
	}

	var history port.HistoryRecorder
	if db != nil {
		recorder := usecase.NewRecordHistoryUseCase(ctx, sqlite.NewHistoryRepository(db))
		defer func() {
			recorder.Close()
			_ = sqlite.Close(db)
		}()
		history = recorder
	}

	engine, err := newEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve browser data directories")
	}

	app, err := ui.New(&ui.Dependencies{
		Ctx:              ctx,
		Preferences:      prefs,
		Engine:           engine,
		Filter:           filtering.NewPolicy(),
		History:          history,
		Theme:            theme.NewManager(ctx, theme.DefaultDarkPalette()),
		BuildInfo:        info,
		InitialURL:       args.initialURL,
		InitialIncognito: args.incognito,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initStartupContext() (context.Context, func()) {
	logDir, _ := config.GetLogDir()
	logger, cleanup, err := logging.NewWithFile(logDir)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}

	logger = logger.With().Str("component", "burrow").Logger()
	return logging.WithContext(context.Background(), logger), cleanup
}

// loadPreferencesAndHistory reads settings.json and opens the history
// database concurrently. A history failure only disables recording.
func loadPreferencesAndHistory(ctx context.Context) (*config.Manager, *sql.DB, error) {
	log := logging.FromContext(ctx)

	prefs, err := config.NewManager()
	if err != nil {
		return nil, nil, err
	}

	var db *sql.DB
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		source := prefs.Load(gctx)
		log.Info().Str("path", prefs.Path()).Stringer("source", source).Msg("preferences loaded")
		return nil
	})

	g.Go(func() error {
		dbFile, pathErr := config.GetHistoryDatabaseFile()
		if pathErr != nil {
			log.Warn().Err(pathErr).Msg("history disabled")
			return nil
		}
		conn, openErr := sqlite.NewConnection(gctx, dbFile)
		if openErr != nil {
			log.Warn().Err(openErr).Str("path", dbFile).Msg("history disabled")
			return nil
		}
		db = conn
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return prefs, db, nil
}

func newEngine() (*webkit.Engine, error) {
	dataDir, err := config.GetDataDir()
	if err != nil {
		return nil, err
	}
	cacheDir, err := config.GetWebKitCacheDir()
	if err != nil {
		return nil, err
	}

	return webkit.NewEngine(port.PersistentContextOptions{
		DataDir:      dataDir,
		CacheDir:     cacheDir,
		CookiePolicy: port.CookiePolicy(os.Getenv(envCookiePolicy)),
	}), nil
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		quitOnSignal(ctx, sigCh, app.Quit, mainloop.IdlePost)
	}()
}

// quitOnSignal waits for one signal and schedules quit on the GTK main loop.
func quitOnSignal(ctx context.Context, sigCh <-chan os.Signal, quit func(), post mainloop.PostFunc) {
	select {
	case sig := <-sigCh:
		logging.FromContext(ctx).Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		post(quit)
	case <-ctx.Done():
	}
}
