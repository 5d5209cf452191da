package theme

import (
	"fmt"
	"strings"
)

// GenerateCSS creates the GTK4 stylesheet for the given palette.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	sb.WriteString("/* Theme colors */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")

	sb.WriteString(generateWindowCSS())
	sb.WriteString("\n")
	sb.WriteString(generateToolbarCSS(p))
	sb.WriteString("\n")
	sb.WriteString(generateProgressCSS())
	sb.WriteString("\n")
	sb.WriteString(generateNotebookCSS())
	sb.WriteString("\n")
	sb.WriteString(generateDialogCSS())

	return sb.String()
}

func generateWindowCSS() string {
	return `/* Window */
window, scrolledwindow, notebook, dialog, popover {
  background-color: @burrow_bg;
  color: @burrow_text;
}
`
}

func generateToolbarCSS(p Palette) string {
	return fmt.Sprintf(`/* Toolbar */
.toolbar {
  background-color: @burrow_bg;
  border-bottom: 1px solid @burrow_border;
  padding: 6px 12px;
  min-height: 36px;
}

entry.address-entry {
  background-color: @burrow_field;
  color: white;
  border: 1px solid @burrow_field_border;
  border-radius: 12px;
  padding: 2px 12px;
  margin: 0 10px;
  caret-color: @burrow_accent;
  min-height: 28px;
  box-shadow: none;
}

entry.address-entry:focus {
  background-color: @burrow_field_focus;
  border-color: @burrow_accent;
}

.toolbar button {
  background-color: transparent;
  color: #b0b0b0;
  border: none;
  border-radius: 6px;
  margin: 0 2px;
  padding: 2px;
  min-height: 32px;
  min-width: 32px;
  box-shadow: none;
}

.toolbar button:hover {
  background-color: %[1]s;
  color: white;
}

.toolbar button:active {
  background-color: %[2]s;
  color: @burrow_accent;
}

.incognito-button {
  color: @burrow_incognito;
}

.incognito-button:hover {
  background-color: alpha(@burrow_incognito, 0.2);
}
`, p.HoverOverlay, p.PressedOverlay)
}

func generateProgressCSS() string {
	return `/* Progress */
progressbar.global-progress trough {
  min-height: 2px;
  background: transparent;
  border: none;
}

progressbar.global-progress progress {
  background-color: @burrow_accent;
  min-height: 2px;
  border-radius: 0;
}
`
}

func generateNotebookCSS() string {
	return `/* Tabs */
notebook header {
  background-color: @burrow_header;
  padding: 0;
  min-height: 28px;
}

notebook tab {
  background-color: transparent;
  border: none;
  padding: 2px 8px;
  color: @burrow_muted;
  font-size: 12px;
  margin-right: 1px;
}

notebook tab:checked {
  background-color: @burrow_bg;
  color: white;
  border-top: 2px solid @burrow_accent;
}

.tab-close-button {
  min-width: 16px;
  min-height: 16px;
  padding: 0;
  margin-left: 8px;
  background-color: transparent;
  color: @burrow_muted;
  border-radius: 100%;
}

.tab-close-button:hover {
  background-color: alpha(@burrow_destructive, 0.2);
  color: @burrow_destructive;
}
`
}

func generateDialogCSS() string {
	return `/* Settings and About */
.settings-section-title {
  font-weight: bold;
}

.settings-note {
  color: @burrow_muted;
  font-size: small;
}

.flat-button {
  padding: 5px 10px;
  border-radius: 5px;
  background-color: alpha(white, 0.05);
  color: @burrow_text;
}

.flat-button:hover {
  background-color: alpha(white, 0.1);
}

.about-box {
  padding: 30px;
}

.about-title {
  font-size: 24px;
  font-weight: bold;
  margin-bottom: 5px;
}

.about-version {
  color: @burrow_muted;
  margin-bottom: 20px;
}
`
}
