package component

import (
	"github.com/bnema/burrow/internal/ui/layout"
)

const (
	tabLabelSpacing  = 4
	closeIconName    = "window-close-symbolic"
	maxTabLabelChars = 20
	tabLabelCSSClass = "tab-label"
	tabTitleCSSClass = "tab-title"
	tabCloseCSSClass = "tab-close-button"
	tabCloseTooltip  = "Close Tab"
)

// TabLabel is the notebook tab header: a title and a close button.
type TabLabel struct {
	box         layout.BoxWidget
	label       layout.LabelWidget
	closeButton layout.ButtonWidget
	clickHandle uint
}

// NewTabLabel builds a tab header showing text. onClose runs when the close
// button is clicked.
func NewTabLabel(factory layout.WidgetFactory, text string, onClose func()) *TabLabel {
	tl := &TabLabel{}

	tl.box = factory.NewBox(layout.OrientationHorizontal, tabLabelSpacing)
	tl.box.AddCssClass(tabLabelCSSClass)

	tl.label = factory.NewLabel(text)
	tl.label.SetMaxWidthChars(maxTabLabelChars)
	tl.label.SetEllipsize(layout.EllipsizeEnd)
	tl.label.AddCssClass(tabTitleCSSClass)

	tl.closeButton = factory.NewButtonFromIcon(closeIconName)
	tl.closeButton.SetHasFrame(false)
	tl.closeButton.SetCanFocus(false)
	tl.closeButton.SetTooltipText(tabCloseTooltip)
	tl.closeButton.AddCssClass(tabCloseCSSClass)
	if onClose != nil {
		tl.clickHandle = tl.closeButton.ConnectClicked(onClose)
	}

	tl.box.Append(tl.label)
	tl.box.Append(tl.closeButton)

	return tl
}

// SetText replaces the title.
func (tl *TabLabel) SetText(text string) {
	tl.label.SetText(text)
}

// Text returns the current title.
func (tl *TabLabel) Text() string {
	return tl.label.GetText()
}

// Widget returns the header for the notebook.
func (tl *TabLabel) Widget() layout.Widget {
	return tl.box
}

// Destroy disconnects the close handler.
func (tl *TabLabel) Destroy() {
	if tl.clickHandle != 0 {
		tl.closeButton.DisconnectClicked(tl.clickHandle)
		tl.clickHandle = 0
	}
}
