package port

import (
	"context"

	"github.com/bnema/burrow/internal/domain/entity"
)

// PreferenceStore is the shared preference state handle.
// Get returns a copy; Save replaces the state and persists it.
type PreferenceStore interface {
	Get() entity.Preferences
	Save(ctx context.Context, prefs entity.Preferences) error
}

// ContentFilter provides the stylesheet injected into new tabs when ad blocking is on.
type ContentFilter interface {
	Stylesheet() string
}

// HistoryRecorder receives navigation events of persistent tabs.
type HistoryRecorder interface {
	RecordVisit(ctx context.Context, uri string)
	RecordTitle(ctx context.Context, uri, title string)
}
