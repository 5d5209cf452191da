package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_HonoursEnvironment(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "config", AppName), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "data", AppName), dirs.DataHome)
	assert.Equal(t, filepath.Join(base, "cache", AppName), dirs.CacheHome)
	assert.Equal(t, filepath.Join(base, "state", AppName), dirs.StateHome)

	settings, err := GetSettingsFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "config", AppName, "settings.json"), settings)

	db, err := GetHistoryDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", AppName, "history.db"), db)

	cookies, err := GetCookiesFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", AppName, "cookies.sqlite"), cookies)

	webkitCache, err := GetWebKitCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cache", AppName, "webkit"), webkitCache)

	logs, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "state", AppName, "logs"), logs)
}

func TestGetXDGDirs_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", AppName), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(home, ".local", "share", AppName), dirs.DataHome)
	assert.Equal(t, filepath.Join(home, ".cache", AppName), dirs.CacheHome)
	assert.Equal(t, filepath.Join(home, ".local", "state", AppName), dirs.StateHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".dev", AppName), filepath.Join(filepath.Base(filepath.Dir(dirs.ConfigHome)), filepath.Base(dirs.ConfigHome)))
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
	assert.Equal(t, filepath.Join(dirs.ConfigHome, "cache"), dirs.CacheHome)
}
