package styles

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/burrow/internal/domain/entity"
)

func TestHistoryRenderer_RenderList(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewHistoryRenderer(NewTheme())
	r.now = func() time.Time { return now }

	entries := []*entity.HistoryEntry{
		{URL: "https://example.com/", Title: "Example", VisitCount: 3, LastVisited: now.Add(-5 * time.Minute)},
		{URL: "https://untitled.test/", VisitCount: 1, LastVisited: now.Add(-3 * time.Hour)},
		{URL: "https://old.test/", Title: "Old", VisitCount: 7, LastVisited: now.Add(-72 * time.Hour)},
	}

	out := r.RenderList(entries)

	assert.Contains(t, out, "Example")
	assert.Contains(t, out, "×3 · 5m ago")
	assert.Contains(t, out, "https://untitled.test/")
	assert.Contains(t, out, "3h ago")
	assert.Contains(t, out, "2026-02-26")
}

func TestHistoryRenderer_RenderListEmpty(t *testing.T) {
	r := NewHistoryRenderer(NewTheme())

	assert.Contains(t, r.RenderList(nil), "No history yet.")
}

func TestHistoryRenderer_Messages(t *testing.T) {
	r := NewHistoryRenderer(NewTheme())

	assert.Contains(t, r.RenderCleared(), "History cleared")
	assert.Contains(t, r.RenderError(errors.New("disk full")), "disk full")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	long := strings.Repeat("é", 60)
	got := truncate(long, historyTitleWidth)
	assert.Len(t, []rune(got), historyTitleWidth)
	assert.True(t, strings.HasSuffix(got, "…"))
}
