// Package theme provides GTK CSS styling for the browser chrome.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Window and toolbar background
	HeaderBar      string // Notebook header strip
	Field          string // Address entry background
	FieldFocus     string // Address entry background while focused
	FieldBorder    string
	Text           string
	Muted          string // Inactive tabs and icons
	Accent         string // Focus ring, progress, active tab marker
	Border         string
	Incognito      string
	Destructive    string // Close button hover
	HoverOverlay   string
	PressedOverlay string
}

// DefaultDarkPalette returns the built-in dark palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#1e1e20",
		HeaderBar:      "#151516",
		Field:          "#2a2a2c",
		FieldFocus:     "#323234",
		FieldBorder:    "#3a3a3c",
		Text:           "#ececec",
		Muted:          "#808080",
		Accent:         "#3daee9",
		Border:         "#000000",
		Incognito:      "#d4af37",
		Destructive:    "#ff5f56",
		HoverOverlay:   "rgba(255, 255, 255, 0.1)",
		PressedOverlay: "rgba(61, 174, 233, 0.3)",
	}
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %q", color)
	}
	return nil
}

// Validate checks every hex token. Overlay tokens are rgba() and skipped.
func (p Palette) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"header_bar", p.HeaderBar},
		{"field", p.Field},
		{"field_focus", p.FieldFocus},
		{"field_border", p.FieldBorder},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"incognito", p.Incognito},
		{"destructive", p.Destructive},
	}

	for _, c := range colors {
		if err := ValidateHexColor(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

// ToCSSVars generates GTK @define-color declarations.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	sb.WriteString("@define-color burrow_bg " + p.Background + ";\n")
	sb.WriteString("@define-color burrow_header " + p.HeaderBar + ";\n")
	sb.WriteString("@define-color burrow_field " + p.Field + ";\n")
	sb.WriteString("@define-color burrow_field_focus " + p.FieldFocus + ";\n")
	sb.WriteString("@define-color burrow_field_border " + p.FieldBorder + ";\n")
	sb.WriteString("@define-color burrow_text " + p.Text + ";\n")
	sb.WriteString("@define-color burrow_muted " + p.Muted + ";\n")
	sb.WriteString("@define-color burrow_accent " + p.Accent + ";\n")
	sb.WriteString("@define-color burrow_border " + p.Border + ";\n")
	sb.WriteString("@define-color burrow_incognito " + p.Incognito + ";\n")
	sb.WriteString("@define-color burrow_destructive " + p.Destructive + ";\n")
	return sb.String()
}
