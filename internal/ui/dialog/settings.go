// Package dialog provides the settings and About windows.
package dialog

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/burrow/internal/application/usecase"
	"github.com/bnema/burrow/internal/domain/build"
	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
)

const (
	settingsWidth     = 440
	settingsHeight    = 520
	settingsSpacing   = 10
	settingsMargin    = 20
	restartNoteMarkup = "<i>(Changes require opening a new tab)</i>"
)

// SettingsApplier commits the dialog form.
type SettingsApplier interface {
	Apply(ctx context.Context, form usecase.SettingsForm) (*usecase.ApplySettingsOutput, error)
}

// SettingsDialog edits the preferences. Cancel discards, Save applies and closes.
type SettingsDialog struct {
	window *gtk.Window

	homepage  *gtk.Entry
	showHome  *gtk.Switch
	engine    *gtk.DropDown
	hwAccel   *gtk.Switch
	adBlock   *gtk.Switch
	amnesia   *gtk.Switch
	applier   SettingsApplier
	buildInfo build.Info

	logger zerolog.Logger
}

// NewSettingsDialog builds the dialog pre-filled from prefs.
func NewSettingsDialog(
	ctx context.Context,
	parent *gtk.Window,
	prefs entity.Preferences,
	applier SettingsApplier,
	buildInfo build.Info,
) *SettingsDialog {
	d := &SettingsDialog{
		applier:   applier,
		buildInfo: buildInfo,
		logger:    logging.Component(ctx, "settings-dialog"),
	}

	d.window = gtk.NewWindow()
	d.window.SetTitle("Settings")
	d.window.SetModal(true)
	d.window.SetDefaultSize(settingsWidth, settingsHeight)
	if parent != nil {
		d.window.SetTransientFor(parent)
	}

	form := usecase.FormFromPreferences(prefs)

	content := gtk.NewBox(gtk.OrientationVertical, settingsSpacing)
	content.SetMarginTop(settingsMargin)
	content.SetMarginBottom(settingsMargin)
	content.SetMarginStart(settingsMargin)
	content.SetMarginEnd(settingsMargin)

	// General
	content.Append(sectionTitle("General"))
	d.homepage = gtk.NewEntry()
	d.homepage.SetText(form.Homepage)
	d.homepage.SetPlaceholderText(entity.DefaultHomepage)
	content.Append(d.homepage)
	d.showHome = gtk.NewSwitch()
	d.showHome.SetActive(form.ShowHomeButton)
	content.Append(switchRow(d.showHome, "Show Home Button"))

	// Search Engine
	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))
	content.Append(sectionTitle("Search Engine"))
	d.engine = gtk.NewDropDownFromStrings(engineNames())
	d.engine.SetSelected(uint(form.SearchEngineIndex))
	content.Append(d.engine)

	// Performance & Privacy
	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))
	content.Append(sectionTitle("Performance &amp; Privacy"))
	d.hwAccel = gtk.NewSwitch()
	d.hwAccel.SetActive(form.UseHardwareAcceleration)
	content.Append(switchRow(d.hwAccel, "Hardware Acceleration"))
	d.adBlock = gtk.NewSwitch()
	d.adBlock.SetActive(form.AdBlockEnabled)
	content.Append(switchRow(d.adBlock, "AdBlock"))
	d.amnesia = gtk.NewSwitch()
	d.amnesia.SetActive(form.AmnesiaMode)
	content.Append(switchRow(d.amnesia, "Amnesia Mode"))
	note := gtk.NewLabel("")
	note.SetMarkup(restartNoteMarkup)
	note.SetHAlign(gtk.AlignStart)
	note.AddCSSClass("settings-note")
	content.Append(note)

	// About
	content.Append(gtk.NewSeparator(gtk.OrientationHorizontal))
	content.Append(sectionTitle("About"))
	aboutButton := gtk.NewButtonWithLabel("About " + build.AppName)
	aboutButton.AddCSSClass("flat-button")
	aboutButton.ConnectClicked(func() {
		NewAboutWindow(d.window, d.buildInfo).Present()
	})
	content.Append(aboutButton)
	content.Append(gtk.NewLinkButtonWithLabel(build.RepoURL(), "Source Code"))
	content.Append(gtk.NewLinkButtonWithLabel(build.DonateURL(), "Donate"))

	scroll := gtk.NewScrolledWindow()
	scroll.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroll.SetVExpand(true)
	scroll.SetChild(content)

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(scroll)
	root.Append(d.buttonRow(ctx))
	d.window.SetChild(root)

	return d
}

func (d *SettingsDialog) buttonRow(ctx context.Context) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, settingsSpacing)
	row.SetHAlign(gtk.AlignEnd)
	row.SetMarginTop(settingsSpacing)
	row.SetMarginBottom(settingsSpacing)
	row.SetMarginEnd(settingsMargin)

	cancel := gtk.NewButtonWithLabel("Cancel")
	cancel.ConnectClicked(func() {
		d.window.Close()
	})

	save := gtk.NewButtonWithLabel("Save")
	save.AddCSSClass("suggested-action")
	save.ConnectClicked(func() {
		d.save(ctx)
	})

	row.Append(cancel)
	row.Append(save)
	return row
}

func (d *SettingsDialog) save(ctx context.Context) {
	out, err := d.applier.Apply(ctx, d.Form())
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to apply settings")
		return
	}
	if !out.Persisted {
		d.logger.Warn().Msg("settings applied for this session only")
	}
	d.window.Close()
}

// Form reads the current widget state.
func (d *SettingsDialog) Form() usecase.SettingsForm {
	return usecase.SettingsForm{
		Homepage:                d.homepage.Text(),
		ShowHomeButton:          d.showHome.Active(),
		UseHardwareAcceleration: d.hwAccel.Active(),
		AdBlockEnabled:          d.adBlock.Active(),
		AmnesiaMode:             d.amnesia.Active(),
		SearchEngineIndex:       int(d.engine.Selected()),
	}
}

// Present shows the dialog.
func (d *SettingsDialog) Present() {
	d.window.Present()
}

func sectionTitle(markup string) *gtk.Label {
	label := gtk.NewLabel("")
	label.SetMarkup("<b>" + markup + "</b>")
	label.SetHAlign(gtk.AlignStart)
	label.AddCSSClass("settings-section-title")
	return label
}

func switchRow(sw *gtk.Switch, text string) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, settingsSpacing)
	sw.SetVAlign(gtk.AlignCenter)
	row.Append(sw)
	row.Append(gtk.NewLabel(text))
	return row
}

func engineNames() []string {
	engines := entity.SearchEngines()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name
	}
	return names
}
