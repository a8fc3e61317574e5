package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SANIN_LOG_LEVEL", "")
	t.Setenv("SANIN_JSON_LOGS", "")
	t.Setenv("SANIN_WINDOW_WIDTH", "")
	t.Setenv("SANIN_WINDOW_HEIGHT", "")
	t.Setenv("DEBUG", "")

	cfg := LoadConfig()

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, float32(DefaultWindowWidth), cfg.WindowWidth)
	assert.Equal(t, float32(DefaultWindowHeight), cfg.WindowHeight)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SANIN_LOG_LEVEL", "error")
	t.Setenv("SANIN_JSON_LOGS", "true")
	t.Setenv("SANIN_WINDOW_WIDTH", "1280")
	t.Setenv("SANIN_WINDOW_HEIGHT", "not-a-number")
	t.Setenv("DEBUG", "")

	cfg := LoadConfig()

	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, float32(1280), cfg.WindowWidth)
	assert.Equal(t, float32(DefaultWindowHeight), cfg.WindowHeight)
}

func TestLoadConfigDebugFlagAndMinimumSize(t *testing.T) {
	t.Setenv("SANIN_LOG_LEVEL", "warn")
	t.Setenv("SANIN_JSON_LOGS", "")
	t.Setenv("SANIN_WINDOW_WIDTH", "100")
	t.Setenv("SANIN_WINDOW_HEIGHT", "100")
	t.Setenv("DEBUG", "1")

	cfg := LoadConfig()

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, float32(MinWindowWidth), cfg.WindowWidth)
	assert.Equal(t, float32(MinWindowHeight), cfg.WindowHeight)
}
