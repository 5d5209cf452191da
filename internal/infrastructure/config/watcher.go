package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the preferences when the file is edited outside the browser.
// Callbacks run on the watcher goroutine. Load the document first; later
// Load calls do not touch viper.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	// The watcher follows the parent directory, which must exist.
	if err := os.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		return err
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.FromContext(ctx)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify preference change detected")

		m.mu.Lock()

		if m.skipNextReload {
			log.Debug().Msg("skipping reload (triggered by own Save)")
			m.skipNextReload = false
			m.mu.Unlock()
			return
		}

		log.Debug().Msg("reloading preferences from external change")
		m.prefs, m.source = m.read(ctx)
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and preferences, releases the lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	prefs := m.prefs
	callbacks := make([]func(entity.Preferences), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(prefs)
	}
}

// OnChange registers a callback invoked after an external reload.
func (m *Manager) OnChange(callback func(entity.Preferences)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
