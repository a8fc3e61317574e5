package app

import (
	"os"
	"strconv"

	"sanin-savara/internal/logger"

	"github.com/rs/zerolog"
)

// Config holds the settings read from the environment at startup.
type Config struct {
	LogLevel     zerolog.Level
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		LogLevel:     logger.ParseLevel(getEnv("SANIN_LOG_LEVEL", "info")),
		JSONLogs:     getEnv("SANIN_JSON_LOGS", "false") == "true",
		WindowWidth:  getEnvFloat("SANIN_WINDOW_WIDTH", DefaultWindowWidth),
		WindowHeight: getEnvFloat("SANIN_WINDOW_HEIGHT", DefaultWindowHeight),
	}

	if os.Getenv("DEBUG") == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}
	if cfg.WindowWidth < MinWindowWidth {
		cfg.WindowWidth = MinWindowWidth
	}
	if cfg.WindowHeight < MinWindowHeight {
		cfg.WindowHeight = MinWindowHeight
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float32) float32 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}
