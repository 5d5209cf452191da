package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/burrow/internal/domain/entity"
)

// ConfigRenderer renders preference commands with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the settings file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.Subtle.Render("not created yet, defaults are in use")
	if exists {
		status = r.theme.Subtle.Render("present")
	}

	return fmt.Sprintf(
		"\n  %s Settings %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Highlight.Render(path),
		status,
	)
}

// RenderPreferences renders every preference key with its current value.
func (r *ConfigRenderer) RenderPreferences(path, source string, prefs entity.Preferences) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(22)
	valueStyle := r.theme.Normal

	rows := []struct {
		key   string
		value string
	}{
		{"homepage", prefs.Homepage},
		{"show_home_button", strconv.FormatBool(prefs.ShowHomeButton)},
		{"use_hw_accel", strconv.FormatBool(prefs.UseHardwareAcceleration)},
		{"enable_adblock", strconv.FormatBool(prefs.AdBlockEnabled)},
		{"amnesia_mode", strconv.FormatBool(prefs.AmnesiaMode)},
		{"search_engine_index", fmt.Sprintf("%d (%s)", prefs.SearchEngineIndex, prefs.SearchEngine().Name)},
		{"search_engine_url", prefs.SearchEngineURL},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s %s\n\n",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render(path),
		r.theme.Subtle.Render("("+source+")"),
	)
	for _, row := range rows {
		fmt.Fprintf(&sb, "    %s %s\n", keyStyle.Render(row.key), valueStyle.Render(row.value))
	}
	return sb.String()
}

// RenderEngines renders the search engine list, marking the selected one.
func (r *ConfigRenderer) RenderEngines(engines []entity.SearchEngine, selected int) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range engines {
		marker := "  "
		name := r.theme.Normal.Render(e.Name)
		if e.Index == selected {
			marker = r.theme.Highlight.Render(IconCursor) + " "
			name = r.theme.Highlight.Render(e.Name)
		}
		fmt.Fprintf(&sb, "  %s%d  %s  %s\n", marker, e.Index, name, r.theme.Subtle.Render(e.URL))
	}
	return sb.String()
}

// RenderResetDone renders the message shown after restoring defaults.
func (r *ConfigRenderer) RenderResetDone(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Defaults written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderCanceled renders an aborted confirmation.
func (r *ConfigRenderer) RenderCanceled() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Canceled, nothing changed."))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
