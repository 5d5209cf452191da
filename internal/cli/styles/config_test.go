package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/burrow/internal/cli/styles"
	"github.com/bnema/burrow/internal/domain/entity"
)

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPath("/tmp/burrow/settings.json", false)
	require.Contains(t, out, "settings.json")
	assert.Contains(t, out, "defaults are in use")

	out = r.RenderPath("/tmp/burrow/settings.json", true)
	assert.Contains(t, out, "present")
}

func TestConfigRenderer_RenderPreferences(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	prefs := entity.DefaultPreferences()
	require.NoError(t, prefs.SelectSearchEngine(3))

	out := r.RenderPreferences("/tmp/burrow/settings.json", "file", prefs)

	for _, key := range []string{
		"homepage", "show_home_button", "use_hw_accel", "enable_adblock",
		"amnesia_mode", "search_engine_index", "search_engine_url",
	} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "Brave")
	assert.Contains(t, out, "https://search.brave.com/search?q=")
	assert.Contains(t, out, "(file)")
}

func TestConfigRenderer_RenderEngines(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderEngines(entity.SearchEngines(), 1)

	for _, e := range entity.SearchEngines() {
		assert.Contains(t, out, e.Name)
		assert.Contains(t, out, e.URL)
	}
	assert.Contains(t, out, styles.IconCursor)
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("permission denied"))
	assert.Contains(t, out, "permission denied")
}
