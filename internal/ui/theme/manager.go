package theme

import (
	"context"

	"github.com/bnema/burrow/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Manager owns the application CSS provider.
type Manager struct {
	palette     Palette
	cssProvider *gtk.CSSProvider
}

// NewManager creates a theme manager for palette. An invalid palette falls
// back to the dark default.
func NewManager(ctx context.Context, palette Palette) *Manager {
	log := logging.FromContext(ctx)

	if err := palette.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid palette, using default")
		palette = DefaultDarkPalette()
	}

	return &Manager{palette: palette}
}

// Palette returns the active palette.
func (m *Manager) Palette() Palette {
	return m.palette
}

// CSS returns the generated stylesheet.
func (m *Manager) CSS() string {
	return GenerateCSS(m.palette)
}

// ApplyToDisplay loads the theme CSS into the display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
	}
	m.cssProvider.LoadFromString(m.CSS())

	gtk.StyleContextAddProviderForDisplay(
		display,
		m.cssProvider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)

	log.Debug().Msg("theme CSS applied to display")
}
