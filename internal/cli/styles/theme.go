// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/burrow/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from the browser palette.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from the default browser palette.
func NewTheme() *Theme {
	return NewThemeFromPalette(theme.DefaultDarkPalette())
}

// NewThemeFromPalette maps the browser palette onto terminal styles so the
// CLI matches the window chrome.
func NewThemeFromPalette(p theme.Palette) *Theme {
	c := lipgloss.Color
	t := &Theme{
		Background: c(p.Background),
		Surface:    c(p.Field),
		Text:       c(p.Text),
		Muted:      c(p.Muted),
		Accent:     c(p.Accent),
		Border:     c(p.FieldBorder),
		Error:      c(p.Destructive),
		Warning:    c(p.Incognito),
		Success:    c(p.Accent),
	}

	fg := func(col lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(col) }
	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.ActiveButton = fg(t.Background).Background(t.Accent).Bold(true).Padding(0, 2)
	t.InactiveButton = fg(t.Muted).Background(t.Surface).Padding(0, 2)
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}
