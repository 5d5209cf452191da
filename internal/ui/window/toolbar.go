package window

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/burrow/internal/domain/entity"
)

const (
	addressPlaceholder = "Search or enter URL"
	toolbarSpacing     = 4
)

// Handlers are the toolbar and notebook actions. Nil handlers are ignored.
type Handlers struct {
	OnBack            func()
	OnForward         func()
	OnReload          func()
	OnHome            func()
	OnSubmit          func(input string)
	OnNewTab          func()
	OnNewIncognitoTab func()
	OnSettings        func()
	OnCloseTab        func(id entity.TabID)
	OnSwitchTab       func(id entity.TabID)
	OnReorderTab      func(id entity.TabID, position int)
}

// Toolbar is the navigation row above the notebook.
type Toolbar struct {
	box       *gtk.Box
	back      *gtk.Button
	forward   *gtk.Button
	reload    *gtk.Button
	home      *gtk.Button
	address   *gtk.Entry
	newTab    *gtk.Button
	incognito *gtk.Button
	settings  *gtk.Button
	handlers  *Handlers
}

func newIconButton(icon, tooltip string) *gtk.Button {
	button := gtk.NewButtonFromIconName(icon)
	button.SetTooltipText(tooltip)
	button.SetCanFocus(false)
	return button
}

func newToolbar(showHome bool) *Toolbar {
	tb := &Toolbar{handlers: &Handlers{}}

	tb.box = gtk.NewBox(gtk.OrientationHorizontal, toolbarSpacing)
	tb.box.AddCSSClass("toolbar")

	tb.back = newIconButton("go-previous-symbolic", "Back")
	tb.forward = newIconButton("go-next-symbolic", "Forward")
	tb.reload = newIconButton("view-refresh-symbolic", "Reload")
	tb.home = newIconButton("go-home-symbolic", "Home")
	tb.home.SetVisible(showHome)

	tb.address = gtk.NewEntry()
	tb.address.SetPlaceholderText(addressPlaceholder)
	tb.address.SetHExpand(true)
	tb.address.AddCSSClass("address-entry")

	tb.newTab = newIconButton("tab-new-symbolic", "New Tab")
	tb.incognito = newIconButton("weather-clear-night-symbolic", "New Incognito Tab")
	tb.incognito.AddCSSClass("incognito-button")
	tb.settings = newIconButton("emblem-system-symbolic", "Settings")

	for _, w := range []gtk.Widgetter{tb.back, tb.forward, tb.reload, tb.home, tb.address, tb.newTab, tb.incognito, tb.settings} {
		tb.box.Append(w)
	}

	tb.connect()
	return tb
}

func (tb *Toolbar) connect() {
	tb.back.ConnectClicked(func() { call(tb.handlers.OnBack) })
	tb.forward.ConnectClicked(func() { call(tb.handlers.OnForward) })
	tb.reload.ConnectClicked(func() { call(tb.handlers.OnReload) })
	tb.home.ConnectClicked(func() { call(tb.handlers.OnHome) })
	tb.newTab.ConnectClicked(func() { call(tb.handlers.OnNewTab) })
	tb.incognito.ConnectClicked(func() { call(tb.handlers.OnNewIncognitoTab) })
	tb.settings.ConnectClicked(func() { call(tb.handlers.OnSettings) })

	tb.address.ConnectActivate(func() {
		if tb.handlers.OnSubmit != nil {
			tb.handlers.OnSubmit(tb.address.Text())
		}
	})
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetAddress shows uri in the address entry.
func (tb *Toolbar) SetAddress(uri string) {
	if tb.address.Text() == uri {
		return
	}
	tb.address.SetText(uri)
}

// SetHomeVisible toggles the home button.
func (tb *Toolbar) SetHomeVisible(visible bool) {
	tb.home.SetVisible(visible)
}

// FocusAddress focuses the address entry and selects its text.
func (tb *Toolbar) FocusAddress() {
	tb.address.GrabFocus()
	tb.address.SelectRegion(0, -1)
}

// Widget returns the toolbar container.
func (tb *Toolbar) Widget() gtk.Widgetter {
	return tb.box
}
