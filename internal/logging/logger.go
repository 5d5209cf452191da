package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "BURROW_LOG_LEVEL"
	envLogFormat = "BURROW_LOG_FORMAT"
	envLogFile   = "BURROW_LOG_FILE"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// FileWriter, when set, receives a JSON copy of every event.
	FileWriter io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	if cfg.FileWriter != nil {
		output = zerolog.MultiLevelWriter(output, cfg.FileWriter)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ConfigFromEnv reads BURROW_LOG_LEVEL and BURROW_LOG_FORMAT on top of the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv(envLogFormat); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}

// QuietConfigFromEnv is ConfigFromEnv for command-line tools: warn level
// unless BURROW_LOG_LEVEL says otherwise, short timestamps.
func QuietConfigFromEnv() Config {
	cfg := ConfigFromEnv()
	if os.Getenv(envLogLevel) == "" {
		cfg.Level = zerolog.WarnLevel
	}
	cfg.TimeFormat = "15:04:05"
	return cfg
}

// NewFromEnv creates a logger based on environment variables
// BURROW_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// BURROW_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv())
}

// FileLoggingRequested reports whether BURROW_LOG_FILE asks for a log file.
func FileLoggingRequested() bool {
	switch strings.ToLower(os.Getenv(envLogFile)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// NewWithFile builds a logger from the environment and, when requested,
// tees it into a rotated file under logDir. The returned cleanup closes the file.
func NewWithFile(logDir string) (zerolog.Logger, func(), error) {
	cfg := ConfigFromEnv()
	cleanup := func() {}

	if !FileLoggingRequested() || logDir == "" {
		return New(cfg), cleanup, nil
	}

	rotator, err := NewLogRotator(logDir, defaultMaxSizeMB, defaultMaxBackups, defaultMaxAgeDays)
	if err != nil {
		return New(cfg), cleanup, err
	}
	cfg.FileWriter = rotator

	return New(cfg), func() { _ = rotator.Close() }, nil
}
