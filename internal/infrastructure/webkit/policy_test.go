package webkit

import (
	"errors"
	"testing"

	"github.com/bnema/burrow/internal/application/port"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/stretchr/testify/assert"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name string
		spec port.SurfaceSpec
		want SurfacePolicy
	}{
		{
			name: "accelerated with filter",
			spec: port.SurfaceSpec{HardwareAcceleration: true, ContentFilterCSS: ".ad { display: none !important; }"},
			want: SurfacePolicy{
				UserAgent:            DesktopUserAgent,
				HardwareAcceleration: true,
				WebGL:                true,
				MediaStream:          true,
				MediaSource:          true,
				DeveloperExtras:      true,
				ContentFilterCSS:     ".ad { display: none !important; }",
			},
		},
		{
			name: "software rendering disables webgl",
			spec: port.SurfaceSpec{},
			want: SurfacePolicy{
				UserAgent:       DesktopUserAgent,
				MediaStream:     true,
				MediaSource:     true,
				DeveloperExtras: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolicyFor(tt.spec)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.HardwareAcceleration, got.WebGL)
			assert.False(t, got.SmoothScrolling)
		})
	}
}

func TestCookieAcceptPolicy(t *testing.T) {
	assert.Equal(t, webkit.CookiePolicyAcceptAlways, cookieAcceptPolicy(port.CookiePolicyAlways))
	assert.Equal(t, webkit.CookiePolicyAcceptNever, cookieAcceptPolicy(port.CookiePolicyNever))
	assert.Equal(t, webkit.CookiePolicyAcceptNoThirdParty, cookieAcceptPolicy(port.CookiePolicyNoThirdParty))
	assert.Equal(t, webkit.CookiePolicyAcceptNoThirdParty, cookieAcceptPolicy(""))
}

func TestApplyEnvDefaults(t *testing.T) {
	env := map[string]string{"GDK_BACKEND": "wayland"}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	set := func(key, value string) error {
		env[key] = value
		return nil
	}

	applied := applyEnvDefaults(lookup, set)

	assert.Equal(t, map[string]string{
		"GST_GL_WINDOW":                      "x11",
		"WEBKIT_DISABLE_SANDBOX_GPU_PROCESS": "1",
	}, applied)
	assert.Equal(t, "wayland", env["GDK_BACKEND"])
}

func TestApplyEnvDefaults_SkipsFailedSet(t *testing.T) {
	lookup := func(string) (string, bool) { return "", false }
	set := func(key, _ string) error {
		if key == "GST_GL_WINDOW" {
			return errors.New("denied")
		}
		return nil
	}

	applied := applyEnvDefaults(lookup, set)

	assert.NotContains(t, applied, "GST_GL_WINDOW")
	assert.Len(t, applied, 2)
}
