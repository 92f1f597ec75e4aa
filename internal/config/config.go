// Package config loads the preview server configuration from the
// environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// ============================================================
// Configuration
// ============================================================

// Config holds the preview server settings.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	FrameWidth   int
	FrameHeight  int
	MaxSessions  int
	PresetsPath  string
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset or malformed.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		FrameWidth:   getEnvAsInt("FRAME_WIDTH", 800),
		FrameHeight:  getEnvAsInt("FRAME_HEIGHT", 600),
		MaxSessions:  getEnvAsInt("MAX_SESSIONS", 64),
		PresetsPath:  getEnv("PRESETS", ""),
	}
}

// Development reports whether the server runs in the development
// environment.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

func (c *Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

func (c *Config) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
