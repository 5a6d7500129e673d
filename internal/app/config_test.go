package app

import (
	"flag"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Run("falls back to built-in defaults", func(t *testing.T) {
		t.Setenv("ONTIME_PORT", "")
		t.Setenv("ONTIME_ENV", "")
		t.Setenv("ONTIME_LOG_LEVEL", "")

		defaults := LoadEnvDefaults()
		assert.Equal(t, 4000, defaults.Port)
		assert.Equal(t, "development", defaults.Env)
		assert.Equal(t, slog.LevelInfo, defaults.LogLevel)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("ONTIME_PORT", "8080")
		t.Setenv("ONTIME_ENV", "production")
		t.Setenv("ONTIME_LOG_LEVEL", "warn")

		defaults := LoadEnvDefaults()
		assert.Equal(t, 8080, defaults.Port)
		assert.Equal(t, "production", defaults.Env)
		assert.Equal(t, slog.LevelWarn, defaults.LogLevel)
	})

	t.Run("ignores malformed port", func(t *testing.T) {
		t.Setenv("ONTIME_PORT", "not-a-port")

		defaults := LoadEnvDefaults()
		assert.Equal(t, 4000, defaults.Port)
	})
}

func TestLogLevelFlag(t *testing.T) {
	newFlags := func(cfg *Config, defaults EnvDefaults) *flag.FlagSet {
		fs := flag.NewFlagSet("ontime", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.TextVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Minimum log level (debug|info|warn|error)")
		return fs
	}
	defaults := EnvDefaults{LogLevel: slog.LevelInfo}

	t.Run("overrides the environment default", func(t *testing.T) {
		var cfg Config
		fs := newFlags(&cfg, defaults)
		assert.NoError(t, fs.Parse([]string{"-log-level=debug", "records.csv"}))
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("keeps the environment default when absent", func(t *testing.T) {
		var cfg Config
		fs := newFlags(&cfg, EnvDefaults{LogLevel: slog.LevelWarn})
		assert.NoError(t, fs.Parse([]string{"records.csv"}))
		assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	})

	t.Run("rejects malformed levels", func(t *testing.T) {
		var cfg Config
		fs := newFlags(&cfg, defaults)
		assert.Error(t, fs.Parse([]string{"-log-level=loud", "records.csv"}))
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("anything else"))
}
