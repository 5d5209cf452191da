// Package layout provides GTK widget abstractions used by the browser chrome.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Orientation represents the orientation for layout widgets.
type Orientation = gtk.Orientation

// Orientation constants matching GTK values.
const (
	OrientationHorizontal = gtk.OrientationHorizontal
	OrientationVertical   = gtk.OrientationVertical
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool

	// Focus and pointer events
	SetCanFocus(canFocus bool)
	SetCanTarget(canTarget bool)

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)
	SetHalign(align gtk.Align)
	SetValign(align gtk.Align)

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	SetTooltipText(text string)

	// GtkWidget returns the underlying GTK widget for embedding.
	GtkWidget() gtk.Widgetter
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
	SetSpacing(spacing int)
}

// EllipsizeMode represents pango ellipsize modes.
type EllipsizeMode = int

// Ellipsize mode constants.
const (
	EllipsizeNone   EllipsizeMode = 0
	EllipsizeStart  EllipsizeMode = 1
	EllipsizeMiddle EllipsizeMode = 2
	EllipsizeEnd    EllipsizeMode = 3
)

// LabelWidget wraps gtk.Label for text display.
type LabelWidget interface {
	Widget

	SetText(text string)
	GetText() string
	SetEllipsize(mode EllipsizeMode)
	SetMaxWidthChars(nChars int)
	SetXalign(xalign float32)
}

// ButtonWidget wraps gtk.Button for clickable elements.
type ButtonWidget interface {
	Widget

	SetHasFrame(hasFrame bool)

	// ConnectClicked connects a click handler. The returned handle disconnects it.
	ConnectClicked(callback func()) uint
	DisconnectClicked(handle uint)
}

// ProgressBarWidget wraps gtk.ProgressBar for loading indicators.
type ProgressBarWidget interface {
	Widget

	SetFraction(fraction float64)
	GetFraction() float64
}

// WidgetFactory creates widgets. The GTK implementation is GtkWidgetFactory;
// tests substitute mocks.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewLabel(text string) LabelWidget
	NewButtonFromIcon(iconName string) ButtonWidget
	NewProgressBar() ProgressBarWidget
}
