// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is where the JSONL stores live.
	DataDir string

	// ExportDir is where reporting exports are written.
	ExportDir string

	// LogLevel controls slog verbosity.
	LogLevel slog.Level

	// LogFormat is "json" or "text".
	LogFormat string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:   getEnv("EDUTRACK_DATA_DIR", "data"),
		ExportDir: getEnv("EDUTRACK_EXPORT_DIR", "exports"),
		LogFormat: strings.ToLower(getEnv("EDUTRACK_LOG_FORMAT", "text")),
	}

	level, err := parseLevel(getEnv("EDUTRACK_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("EDUTRACK_LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("EDUTRACK_LOG_LEVEL must be debug, info, warn or error, got %q", s)
	}
}
