package app

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvDefaults are the environment-sourced default values applied to flags
// before parsing.
type EnvDefaults struct {
	Port     int
	Env      string
	LogLevel slog.Level
}

// LoadEnvDefaults reads defaults from the environment, loading a .env file
// first when one exists. Missing or malformed values fall back silently;
// flags remain the source of truth.
func LoadEnvDefaults() EnvDefaults {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	return EnvDefaults{
		Port:     getenvInt("ONTIME_PORT", 4000),
		Env:      getenvDefault("ONTIME_ENV", "development"),
		LogLevel: parseLogLevel(os.Getenv("ONTIME_LOG_LEVEL")),
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseLogLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
