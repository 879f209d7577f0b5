// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the aggregation backend.
// Values are populated by Load from environment variables.
type Config struct {
	// PrisonAPIBaseURL is the base URL of the upstream prison API. Required.
	PrisonAPIBaseURL string

	// UpstreamTimeout bounds each upstream HTTP call. Defaults to 30s.
	// Set UPSTREAM_TIMEOUT to a Go duration string to override.
	UpstreamTimeout time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// SentryDSN enables error tracking when set. Optional; hard upstream
	// failures are logged but not reported without it.
	SentryDSN string

	// Environment tags reported errors (e.g. "production"). Defaults to
	// "development".
	Environment string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.UpstreamTimeout = timeout

	var missing []string

	cfg.PrisonAPIBaseURL = os.Getenv("PRISON_API_BASE_URL")
	if cfg.PrisonAPIBaseURL == "" {
		missing = append(missing, "PRISON_API_BASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
