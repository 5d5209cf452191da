package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName names the per-user directories.
	AppName = "burrow"

	settingsFileName = "settings.json"
	schemaFileName   = "settings.schema.json"
	historyDBName    = "history.db"
	cookiesFileName  = "cookies.sqlite"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for burrow:
//   - $XDG_CONFIG_HOME/burrow (default: ~/.config/burrow)
//   - $XDG_DATA_HOME/burrow (default: ~/.local/share/burrow)
//   - $XDG_CACHE_HOME/burrow (default: ~/.cache/burrow)
//   - $XDG_STATE_HOME/burrow (default: ~/.local/state/burrow)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", AppName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			CacheHome:  filepath.Join(devDir, "cache"),
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		CacheHome:  xdgDir("XDG_CACHE_HOME", homeDir, ".cache"),
		StateHome:  xdgDir("XDG_STATE_HOME", homeDir, ".local", "state"),
	}, nil
}

func xdgDir(env, homeDir string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{homeDir}, fallback...)...)
	}
	return filepath.Join(base, AppName)
}

// GetConfigDir returns the XDG config directory for burrow.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for burrow.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetCacheDir returns the XDG cache directory for burrow.
func GetCacheDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// GetLogDir returns the log directory. Logs live in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetSettingsFile returns the path of the preference document.
func GetSettingsFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// GetHistoryDatabaseFile returns the path of the visit history database.
func GetHistoryDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, historyDBName), nil
}

// GetCookiesFile returns the cookie store of the persistent browsing context.
func GetCookiesFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, cookiesFileName), nil
}

// GetWebKitCacheDir returns the HTTP cache of the persistent browsing context.
func GetWebKitCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "webkit"), nil
}
