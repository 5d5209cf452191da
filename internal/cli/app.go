// Package cli holds the dependencies shared by the command-line subcommands.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/burrow/internal/application/usecase"
	"github.com/bnema/burrow/internal/cli/styles"
	"github.com/bnema/burrow/internal/domain/build"
	"github.com/bnema/burrow/internal/infrastructure/config"
	"github.com/bnema/burrow/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/burrow/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db      *sql.DB
	history *usecase.RecordHistoryUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the preferences and prepares a quiet logger.
// The history database is opened on first use.
func NewApp() (*App, error) {
	logger := logging.New(logging.QuietConfigFromEnv())
	ctx := logging.WithContext(context.Background(), logger)

	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	source := mgr.Load(ctx)
	logger.Debug().Str("path", mgr.Path()).Stringer("source", source).Msg("preferences loaded")

	return &App{
		Config: mgr,
		Theme:  styles.NewTheme(),
		ctx:    ctx,
	}, nil
}

// History opens the history database and returns the history use case.
func (a *App) History() (*usecase.RecordHistoryUseCase, error) {
	if a.history != nil {
		return a.history, nil
	}

	dbFile, err := config.GetHistoryDatabaseFile()
	if err != nil {
		return nil, fmt.Errorf("resolve history database: %w", err)
	}
	db, err := sqlite.NewConnection(a.ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	a.db = db
	a.history = usecase.NewRecordHistoryUseCase(a.ctx, sqlite.NewHistoryRepository(db))
	return a.history, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.history != nil {
		a.history.Close()
	}
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
