// Package config loads runtime configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds every tunable the client reads at startup.
type Config struct {
	// APIBaseURL is the backend root, no trailing slash.
	APIBaseURL string
	// RequestTimeout is the wall-clock limit for any single request,
	// including uploads. Hitting it aborts the request with a
	// timeout-specific error.
	RequestTimeout time.Duration
	// StatePath is the durable client store (token, cached resume
	// analysis, selected plan).
	StatePath string
	// MaxResumeSize is the client-side resume upload ceiling in bytes.
	MaxResumeSize int64
	// DiscordToken enables the Discord resume-intake assistant when set.
	DiscordToken string
}

func Load() (*Config, error) {
	statePath := getEnvString("GROWVY_STATE_FILE", "")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		statePath = filepath.Join(home, ".growvy", "state.json")
	}

	return &Config{
		APIBaseURL:     getEnvString("GROWVY_API_URL", "https://api.hr.growvy.online"),
		RequestTimeout: getEnvDuration("GROWVY_REQUEST_TIMEOUT", 60*time.Second),
		StatePath:      statePath,
		MaxResumeSize:  getEnvInt64("GROWVY_MAX_RESUME_SIZE", 5<<20),
		DiscordToken:   os.Getenv("DISCORD_BOT_TOKEN"),
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
