package webkit

import "github.com/bnema/burrow/internal/application/port"

// DesktopUserAgent is sent by every surface.
const DesktopUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// SurfacePolicy is the engine configuration of one surface, fixed at creation.
type SurfacePolicy struct {
	UserAgent            string
	HardwareAcceleration bool
	WebGL                bool
	MediaStream          bool
	MediaSource          bool
	SmoothScrolling      bool
	DeveloperExtras      bool
	ContentFilterCSS     string
}

// PolicyFor derives the surface policy from a spec.
// GPU compositing and WebGL are switched together.
func PolicyFor(spec port.SurfaceSpec) SurfacePolicy {
	return SurfacePolicy{
		UserAgent:            DesktopUserAgent,
		HardwareAcceleration: spec.HardwareAcceleration,
		WebGL:                spec.HardwareAcceleration,
		MediaStream:          true,
		MediaSource:          true,
		SmoothScrolling:      false,
		DeveloperExtras:      true,
		ContentFilterCSS:     spec.ContentFilterCSS,
	}
}
