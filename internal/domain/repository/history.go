package repository

import (
	"context"

	"github.com/bnema/burrow/internal/domain/entity"
)

// HistoryRepository defines operations for browsing history persistence.
type HistoryRepository interface {
	// Save creates or updates a history entry (upsert on URL).
	Save(ctx context.Context, entry *entity.HistoryEntry) error

	// FindByURL retrieves a history entry by its URL. Returns nil, nil when absent.
	FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error)

	// UpdateTitle sets the title of an existing entry.
	UpdateTitle(ctx context.Context, url, title string) error

	// GetRecent retrieves recent history entries, most recent first.
	GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error)

	// DeleteAll removes all history entries.
	DeleteAll(ctx context.Context) error
}
