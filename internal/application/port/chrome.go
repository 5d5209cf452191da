package port

import "github.com/bnema/burrow/internal/domain/entity"

// TabStrip is the notebook holding one page per tab.
type TabStrip interface {
	// AppendTab adds a page showing surface and returns its index.
	AppendTab(id entity.TabID, surface RenderingSurface, label string) (int, error)

	// RemoveTab drops the page of id. Unknown ids are ignored.
	RemoveTab(id entity.TabID)

	// SelectTab makes id the visible page.
	SelectTab(id entity.TabID)

	// SetTabLabel replaces the label of id.
	SetTabLabel(id entity.TabID, label string)
}

// BrowserChrome is the window decoration fed by tab lifecycle events.
type BrowserChrome interface {
	SetAddress(uri string)
	SetWindowTitle(title string)

	// ShowProgress makes the global progress indicator visible at fraction.
	ShowProgress(fraction float64)
	HideProgress()

	SetHomeButtonVisible(visible bool)
}
