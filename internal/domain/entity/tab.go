package entity

import (
	"time"
	"unicode/utf8"
)

// TabID uniquely identifies a tab.
type TabID string

const (
	// TabLabelMaxRunes caps the title shown on a tab.
	TabLabelMaxRunes = 15
	// IncognitoMarker prefixes the label of ephemeral tabs.
	IncognitoMarker = "🕵️ "
	// LoadingLabel is shown until the first title arrives.
	LoadingLabel = "Loading..."
)

// Tab is one notebook page bound to a rendering surface.
// Incognito is fixed at creation and decides which browsing context the tab uses.
type Tab struct {
	ID        TabID
	Incognito bool
	URI       string
	Title     string
	Position  int
	CreatedAt time.Time
}

// NewTab creates a tab. incognito is the effective flag (request or amnesia mode).
func NewTab(id TabID, incognito bool) *Tab {
	return &Tab{
		ID:        id,
		Incognito: incognito,
		CreatedAt: time.Now(),
	}
}

// Label returns the text shown on the tab: the title truncated to
// TabLabelMaxRunes, prefixed with IncognitoMarker for incognito tabs.
func (t *Tab) Label() string {
	return TabLabel(t.Title, t.Incognito)
}

// TabLabel builds a tab label from a page title.
func TabLabel(title string, incognito bool) string {
	label := TruncateRunes(title, TabLabelMaxRunes)
	if incognito {
		return IncognitoMarker + label
	}
	return label
}

// LoadingTabLabel is the label of a tab that has not reported a title yet.
func LoadingTabLabel(incognito bool) string {
	if incognito {
		return IncognitoMarker + LoadingLabel
	}
	return LoadingLabel
}

// TruncateRunes keeps at most n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
// When the active tab is removed, the tab that slides into its position
// (or the new last tab) becomes active.
func (tl *TabList) Remove(id TabID) bool {
	i := tl.IndexOf(id)
	if i < 0 {
		return false
	}

	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	for j := i; j < len(tl.Tabs); j++ {
		tl.Tabs[j].Position = j
	}

	if tl.ActiveTabID == id {
		switch {
		case len(tl.Tabs) == 0:
			tl.ActiveTabID = ""
		case i < len(tl.Tabs):
			tl.ActiveTabID = tl.Tabs[i].ID
		default:
			tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
		}
	}
	return true
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// IndexOf returns the position of a tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// IsActive reports whether id is the active tab.
func (tl *TabList) IsActive(id TabID) bool {
	return id != "" && tl.ActiveTabID == id
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := tl.IndexOf(id)
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return true
}
