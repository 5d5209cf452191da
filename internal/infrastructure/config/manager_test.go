package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	mgr := NewManagerAt(filepath.Join(t.TempDir(), "nested", settingsFileName))

	source := mgr.Load(context.Background())

	assert.Equal(t, SourceDefaults, source)
	assert.Equal(t, entity.DefaultPreferences(), mgr.Get())
}

func TestLoad_MergesDefaultsPerField(t *testing.T) {
	path := writeSettings(t, `{"homepage": "https://start.example", "amnesia_mode": true}`)
	mgr := NewManagerAt(path)

	source := mgr.Load(context.Background())
	prefs := mgr.Get()

	assert.Equal(t, SourceFile, source)
	assert.Equal(t, "https://start.example", prefs.Homepage)
	assert.True(t, prefs.AmnesiaMode)
	assert.True(t, prefs.UseHardwareAcceleration)
	assert.True(t, prefs.AdBlockEnabled)
	assert.True(t, prefs.ShowHomeButton)
	assert.Equal(t, 0, prefs.SearchEngineIndex)
	assert.Equal(t, "https://duckduckgo.com/?q=", prefs.SearchEngineURL)
}

func TestLoad_ParseErrorUsesWholeDocumentDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated json", content: `{"homepage": "https://start.example", "amnesia_mode": tr`},
		{name: "not json", content: `homepage = "https://start.example"`},
		{name: "wrong value type", content: `{"homepage": "https://start.example", "use_hw_accel": {"on": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := NewManagerAt(writeSettings(t, tt.content))

			source := mgr.Load(context.Background())

			assert.Equal(t, SourceRecovered, source)
			assert.Equal(t, entity.DefaultPreferences(), mgr.Get())
		})
	}
}

func TestLoad_SearchEngineDerivedFromIndex(t *testing.T) {
	for _, engine := range entity.SearchEngines() {
		t.Run(engine.Name, func(t *testing.T) {
			doc, err := json.Marshal(map[string]any{
				"search_engine_index": engine.Index,
				"search_engine_url":   "https://stale.example/?q=",
			})
			require.NoError(t, err)
			mgr := NewManagerAt(writeSettings(t, string(doc)))

			mgr.Load(context.Background())
			prefs := mgr.Get()

			assert.Equal(t, engine.Index, prefs.SearchEngineIndex)
			assert.Equal(t, engine.URL, prefs.SearchEngineURL)
			assert.True(t, prefs.SearchEngineConsistent())
		})
	}
}

func TestLoad_OutOfRangeIndexResetsEngine(t *testing.T) {
	mgr := NewManagerAt(writeSettings(t, `{"search_engine_index": 9, "search_engine_url": "https://x.example/?q="}`))

	mgr.Load(context.Background())
	prefs := mgr.Get()

	assert.Equal(t, 0, prefs.SearchEngineIndex)
	assert.Equal(t, "https://duckduckgo.com/?q=", prefs.SearchEngineURL)
}

func TestLoad_BlankHomepageFallsBack(t *testing.T) {
	mgr := NewManagerAt(writeSettings(t, `{"homepage": "   "}`))

	mgr.Load(context.Background())

	assert.Equal(t, entity.DefaultHomepage, mgr.Get().Homepage)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BURROW_AMNESIA_MODE", "true")
	t.Setenv("BURROW_HOMEPAGE", "https://env.example")
	mgr := NewManagerAt(filepath.Join(t.TempDir(), settingsFileName))

	mgr.Load(context.Background())
	prefs := mgr.Get()

	assert.True(t, prefs.AmnesiaMode)
	assert.Equal(t, "https://env.example", prefs.Homepage)
}

func TestSave_WritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burrow", settingsFileName)
	mgr := NewManagerAt(path)
	mgr.Load(context.Background())

	prefs := entity.DefaultPreferences()
	prefs.Homepage = "https://start.example"
	require.NoError(t, prefs.SelectSearchEngine(3))

	require.NoError(t, mgr.Save(context.Background(), prefs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := `{
  "homepage": "https://start.example",
  "use_hw_accel": true,
  "enable_adblock": true,
  "amnesia_mode": false,
  "show_home_button": true,
  "search_engine_url": "https://search.brave.com/search?q=",
  "search_engine_index": 3
}
`
	assert.Equal(t, expected, string(data))
	assert.Equal(t, prefs, mgr.Get())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	prefs := entity.DefaultPreferences()
	prefs.AmnesiaMode = true
	prefs.AdBlockEnabled = false
	require.NoError(t, prefs.SelectSearchEngine(1))

	require.NoError(t, NewManagerAt(path).Save(context.Background(), prefs))

	reloaded := NewManagerAt(path)
	assert.Equal(t, SourceFile, reloaded.Load(context.Background()))
	assert.Equal(t, prefs, reloaded.Get())
}

func TestSave_FailureStillUpdatesMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), filePerm))
	mgr := NewManagerAt(filepath.Join(blocker, settingsFileName))

	prefs := entity.DefaultPreferences()
	prefs.ShowHomeButton = false

	err := mgr.Save(context.Background(), prefs)

	require.Error(t, err)
	assert.False(t, mgr.Get().ShowHomeButton)
}

func TestReset_RestoresDefaults(t *testing.T) {
	path := writeSettings(t, `{"amnesia_mode": true, "search_engine_index": 2}`)
	mgr := NewManagerAt(path)
	mgr.Load(context.Background())
	require.True(t, mgr.Get().AmnesiaMode)

	require.NoError(t, mgr.Reset(context.Background()))

	reloaded := NewManagerAt(path)
	reloaded.Load(context.Background())
	assert.Equal(t, entity.DefaultPreferences(), reloaded.Get())
}

func TestWatch_ReloadsExternalEdits(t *testing.T) {
	path := writeSettings(t, `{"amnesia_mode": false}`)
	mgr := NewManagerAt(path)
	mgr.Load(context.Background())

	var (
		mu   sync.Mutex
		seen []entity.Preferences
	)
	mgr.OnChange(func(p entity.Preferences) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, p)
	})
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte(`{"amnesia_mode": true}`), filePerm))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0 && seen[len(seen)-1].AmnesiaMode
	}, 5*time.Second, 20*time.Millisecond)
	assert.True(t, mgr.Get().AmnesiaMode)
}

func TestLoad_AfterWatchKeepsWatcherState(t *testing.T) {
	mgr := NewManagerAt(filepath.Join(t.TempDir(), "burrow", settingsFileName))
	require.Equal(t, SourceDefaults, mgr.Load(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()))

	t.Setenv("BURROW_HOMEPAGE", "https://env.example")
	source := mgr.Load(context.Background())

	assert.Equal(t, SourceDefaults, source)
	assert.Equal(t, entity.DefaultHomepage, mgr.Get().Homepage)
}

func TestLoadSource_String(t *testing.T) {
	assert.Equal(t, "file", SourceFile.String())
	assert.Equal(t, "defaults", SourceDefaults.String())
	assert.Equal(t, "recovered", SourceRecovered.String())
	assert.Equal(t, "unknown", LoadSource(7).String())
}

func TestWriteSchema_DescribesPreferenceKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf))

	out := buf.String()
	for _, key := range []string{
		keyHomepage, keyUseHWAccel, keyEnableAdBlock, keyAmnesiaMode,
		keyShowHomeButton, keySearchEngineURL, keySearchEngineIndex,
	} {
		assert.Contains(t, out, `"`+key+`"`)
	}
	assert.Contains(t, out, "Burrow Preferences")
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	path, err := GenerateSchemaFile(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, schemaFileName), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
