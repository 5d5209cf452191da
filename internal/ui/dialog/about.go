package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/burrow/internal/domain/build"
)

const (
	aboutWidth    = 350
	aboutHeight   = 400
	aboutIconName = "web-browser"
)

// NewAboutWindow builds the About window for the application.
func NewAboutWindow(parent *gtk.Window, info build.Info) *gtk.Window {
	win := gtk.NewWindow()
	win.SetTitle("About")
	win.SetModal(true)
	win.SetResizable(false)
	win.SetDefaultSize(aboutWidth, aboutHeight)
	if parent != nil {
		win.SetTransientFor(parent)
	}

	box := gtk.NewBox(gtk.OrientationVertical, 15)
	box.AddCSSClass("about-box")

	icon := gtk.NewImageFromIconName(aboutIconName)
	icon.SetPixelSize(128)
	box.Append(icon)

	title := gtk.NewLabel(build.AppName)
	title.AddCSSClass("about-title")
	box.Append(title)

	version := gtk.NewLabel(info.DisplayVersion())
	version.AddCSSClass("about-version")
	box.Append(version)

	desc := gtk.NewLabel(build.Description)
	desc.SetWrap(true)
	desc.SetJustify(gtk.JustifyCenter)
	box.Append(desc)

	box.Append(gtk.NewSeparator(gtk.OrientationHorizontal))
	box.Append(gtk.NewLinkButtonWithLabel(build.RepoURL(), "Source Code"))
	box.Append(gtk.NewLinkButtonWithLabel(build.DonateURL(), "Donate"))

	win.SetChild(box)
	return win
}
