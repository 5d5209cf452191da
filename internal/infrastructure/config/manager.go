// Package config persists user preferences as a JSON document.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/logging"
	"github.com/spf13/viper"
)

const envPrefix = "BURROW"

// Preference document keys, as written to settings.json.
const (
	keyHomepage          = "homepage"
	keyUseHWAccel        = "use_hw_accel"
	keyEnableAdBlock     = "enable_adblock"
	keyAmnesiaMode       = "amnesia_mode"
	keyShowHomeButton    = "show_home_button"
	keySearchEngineURL   = "search_engine_url"
	keySearchEngineIndex = "search_engine_index"
)

// LoadSource tells where the current preferences came from.
type LoadSource int

const (
	// SourceFile means the document was read and merged with defaults.
	SourceFile LoadSource = iota
	// SourceDefaults means no document exists yet.
	SourceDefaults
	// SourceRecovered means the document was unreadable and defaults replaced it.
	SourceRecovered
)

// String returns a human-readable representation of the source.
func (s LoadSource) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceDefaults:
		return "defaults"
	case SourceRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Manager loads, saves and watches the preference document.
// It implements port.PreferenceStore.
type Manager struct {
	prefs     entity.Preferences
	source    LoadSource
	path      string
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(entity.Preferences)
	watching  bool
	// skipNextReload suppresses the watcher event caused by our own Save.
	skipNextReload bool
}

// NewManager creates a manager for the default settings file.
func NewManager() (*Manager, error) {
	path, err := GetSettingsFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(path), nil
}

// NewManagerAt creates a manager for the settings file at path.
func NewManagerAt(path string) *Manager {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	// BURROW_HOMEPAGE, BURROW_AMNESIA_MODE, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		prefs:     entity.DefaultPreferences(),
		source:    SourceDefaults,
		path:      path,
		viper:     v,
		callbacks: make([]func(entity.Preferences), 0),
	}
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the document. A missing file yields defaults; an unreadable
// one yields whole-document defaults. Neither is an error.
// Call Load before Watch: once watching, viper is only read from its own
// watcher goroutine and Load returns the current source unchanged.
func (m *Manager) Load(ctx context.Context) LoadSource {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		logging.FromContext(ctx).Debug().Msg("preferences already watched, skipping load")
		return m.source
	}

	m.setDefaults()
	m.prefs, m.source = m.read(ctx)
	return m.source
}

func (m *Manager) setDefaults() {
	defaults := entity.DefaultPreferences()

	m.viper.SetDefault(keyHomepage, defaults.Homepage)
	m.viper.SetDefault(keyUseHWAccel, defaults.UseHardwareAcceleration)
	m.viper.SetDefault(keyEnableAdBlock, defaults.AdBlockEnabled)
	m.viper.SetDefault(keyAmnesiaMode, defaults.AmnesiaMode)
	m.viper.SetDefault(keyShowHomeButton, defaults.ShowHomeButton)
	m.viper.SetDefault(keySearchEngineURL, defaults.SearchEngineURL)
	m.viper.SetDefault(keySearchEngineIndex, defaults.SearchEngineIndex)
}

// read must be called with m.mu held.
func (m *Manager) read(ctx context.Context) (entity.Preferences, LoadSource) {
	log := logging.FromContext(ctx).With().Str("path", m.path).Logger()

	source := SourceFile
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("preference file unreadable, using defaults")
			return entity.DefaultPreferences(), SourceRecovered
		}
		log.Debug().Msg("no preference file, using defaults")
		source = SourceDefaults
	}

	var prefs entity.Preferences
	if err := m.viper.Unmarshal(&prefs); err != nil {
		log.Warn().Err(err).Msg("preference file has invalid values, using defaults")
		return entity.DefaultPreferences(), SourceRecovered
	}

	normalizePreferences(&prefs)
	return prefs, source
}

// normalizePreferences re-derives the search URL from the index and
// fills an empty homepage.
func normalizePreferences(prefs *entity.Preferences) {
	prefs.Homepage = strings.TrimSpace(prefs.Homepage)
	if prefs.Homepage == "" {
		prefs.Homepage = entity.DefaultHomepage
	}

	engine, err := entity.SearchEngineByIndex(prefs.SearchEngineIndex)
	if err != nil {
		engine, _ = entity.SearchEngineByIndex(entity.DefaultSearchEngine)
	}
	prefs.SetSearchEngine(engine)
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() entity.Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs
}

// Source reports how the last Load resolved.
func (m *Manager) Source() LoadSource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// Save replaces the in-memory preferences and writes them to disk.
// The in-memory state is updated even when the write fails.
func (m *Manager) Save(ctx context.Context, prefs entity.Preferences) error {
	normalizePreferences(&prefs)

	m.mu.Lock()
	m.prefs = prefs
	m.source = SourceFile
	if m.watching {
		m.skipNextReload = true
	}
	m.mu.Unlock()

	if err := writePreferences(m.path, prefs); err != nil {
		m.mu.Lock()
		m.skipNextReload = false
		m.mu.Unlock()
		return err
	}

	logging.FromContext(ctx).Debug().Str("path", m.path).Msg("preferences saved")
	return nil
}

// Reset writes the default preferences.
func (m *Manager) Reset(ctx context.Context) error {
	return m.Save(ctx, entity.DefaultPreferences())
}

// writePreferences writes prefs as two-space indented JSON through a
// temporary file in the same directory.
func writePreferences(path string, prefs entity.Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, settingsFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary preference file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set preference file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace preference file: %w", err)
	}
	return nil
}
