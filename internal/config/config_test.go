package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EDUTRACK_DATA_DIR", "")
	t.Setenv("EDUTRACK_EXPORT_DIR", "")
	t.Setenv("EDUTRACK_LOG_FORMAT", "")
	t.Setenv("EDUTRACK_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EDUTRACK_DATA_DIR", "/var/lib/edutrack")
	t.Setenv("EDUTRACK_LOG_FORMAT", "JSON")
	t.Setenv("EDUTRACK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/edutrack", cfg.DataDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("EDUTRACK_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		t.Setenv("EDUTRACK_LOG_LEVEL", "")
		t.Setenv("EDUTRACK_LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})
}
