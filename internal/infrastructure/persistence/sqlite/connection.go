// Package sqlite stores visit history in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled sqlite build

	"github.com/bnema/burrow/internal/logging"
)

// ErrNoHistoryPath is returned when no database file is given.
var ErrNoHistoryPath = errors.New("history database path cannot be empty")

// historyPragmas are applied by the driver on every new connection.
var historyPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(wal)",
	"synchronous(normal)",
	"foreign_keys(on)",
	"temp_store(memory)",
}

func historyDSN(path string) string {
	q := url.Values{}
	for _, p := range historyPragmas {
		q.Add("_pragma", p)
	}
	return "file:" + path + "?" + q.Encode()
}

// NewConnection opens the history database at path and migrates it.
// The parent directory is created when missing.
func NewConnection(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, ErrNoHistoryPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", historyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// One writer; keep the single connection alive so WAL state is reused.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)

	setup := func() error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to reach history database: %w", err)
		}
		return RunMigrations(ctx, db)
	}
	if err := setup(); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("history database ready")
	return db, nil
}

// Close is nil-safe.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
