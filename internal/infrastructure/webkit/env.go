package webkit

import (
	"os"

	"github.com/rs/zerolog"
)

// processEnvDefaults are applied before GTK initializes. User values win.
var processEnvDefaults = []struct {
	key   string
	value string
}{
	{key: "GDK_BACKEND", value: "x11"},
	{key: "GST_GL_WINDOW", value: "x11"},
	{key: "WEBKIT_DISABLE_SANDBOX_GPU_PROCESS", value: "1"},
}

// ApplyProcessEnvironment sets the rendering environment variables that are unset.
func ApplyProcessEnvironment(log zerolog.Logger) {
	applied := applyEnvDefaults(os.LookupEnv, os.Setenv)
	for key, value := range applied {
		log.Debug().Str("key", key).Str("value", value).Msg("environment default applied")
	}
}

func applyEnvDefaults(lookup func(string) (string, bool), set func(string, string) error) map[string]string {
	applied := make(map[string]string)
	for _, def := range processEnvDefaults {
		if _, ok := lookup(def.key); ok {
			continue
		}
		if err := set(def.key, def.value); err != nil {
			continue
		}
		applied[def.key] = def.value
	}
	return applied
}
