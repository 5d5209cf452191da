package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/domain/repository"
	"github.com/bnema/burrow/internal/logging"
)

const logURLMaxLen = 60

const (
	upsertHistorySQL = `
INSERT INTO history (url, title, visit_count, last_visited, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
    title = CASE WHEN excluded.title <> '' THEN excluded.title ELSE history.title END,
    visit_count = excluded.visit_count,
    last_visited = excluded.last_visited
RETURNING id`

	selectHistoryColumns = `SELECT id, url, title, visit_count, last_visited, created_at FROM history`

	getHistoryByURLSQL = selectHistoryColumns + ` WHERE url = ?`
	getRecentSQL       = selectHistoryColumns + ` ORDER BY last_visited DESC, id DESC LIMIT ? OFFSET ?`
	updateTitleSQL     = `UPDATE history SET title = ? WHERE url = ?`
	deleteAllSQL       = `DELETE FROM history`
)

type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite-backed history repository.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(entry.URL, logURLMaxLen)).Msg("saving history entry")

	now := time.Now()
	if entry.LastVisited.IsZero() {
		entry.LastVisited = now
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.VisitCount < 1 {
		entry.VisitCount = 1
	}

	err := r.db.QueryRowContext(ctx, upsertHistorySQL,
		entry.URL,
		entry.Title,
		entry.VisitCount,
		entry.LastVisited.UnixMilli(),
		entry.CreatedAt.UnixMilli(),
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *historyRepo) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	entry, err := scanHistory(r.db.QueryRowContext(ctx, getHistoryByURLSQL, url))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find history entry: %w", err)
	}
	return entry, nil
}

func (r *historyRepo) UpdateTitle(ctx context.Context, url, title string) error {
	if _, err := r.db.ExecContext(ctx, updateTitleSQL, title, url); err != nil {
		return fmt.Errorf("failed to update history title: %w", err)
	}
	return nil
}

func (r *historyRepo) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, getRecentSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.HistoryEntry, 0, limit)
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}

func (r *historyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllSQL); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (*entity.HistoryEntry, error) {
	var (
		entry       entity.HistoryEntry
		lastVisited int64
		createdAt   int64
	)
	if err := row.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.VisitCount, &lastVisited, &createdAt); err != nil {
		return nil, err
	}
	entry.LastVisited = time.UnixMilli(lastVisited)
	entry.CreatedAt = time.UnixMilli(createdAt)
	return &entry, nil
}
