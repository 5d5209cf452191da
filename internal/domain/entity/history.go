package entity

import "time"

// HistoryEntry is one visited URL with its visit count. Only tabs in the
// persistent context record entries.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	VisitCount  int64     `json:"visit_count"`
	LastVisited time.Time `json:"last_visited"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHistoryEntry returns a first visit to url made now.
func NewHistoryEntry(url, title string) *HistoryEntry {
	at := time.Now()
	return &HistoryEntry{URL: url, Title: title, VisitCount: 1, LastVisited: at, CreatedAt: at}
}

// IncrementVisit counts another visit made now.
func (h *HistoryEntry) IncrementVisit() {
	h.VisitCount++
	h.LastVisited = time.Now()
}

// Label is the title, or the URL for untitled pages.
func (h *HistoryEntry) Label() string {
	if h.Title != "" {
		return h.Title
	}
	return h.URL
}
