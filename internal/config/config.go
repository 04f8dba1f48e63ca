// Package config provides environment configuration for the bot.
package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// State
	StateTable string
	StateTTL   time.Duration

	// Connector
	ParamPrefix      string
	ConnectorTimeout time.Duration

	// Local server
	Port string

	// Logging
	LogLevel string
	Env      string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		// State
		StateTable: getEnv("STATE_TABLE", ""),
		StateTTL:   getDurationEnv("STATE_TTL", 720*time.Hour),

		// Connector
		ParamPrefix:      getEnv("PARAM_PREFIX", ""),
		ConnectorTimeout: getDurationEnv("CONNECTOR_TIMEOUT", 10*time.Second),

		// Local server
		Port: getEnv("PORT", "3978"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Env:      getEnv("ENV", ""),
	}
}

// Validate reports the settings the Lambda entrypoint cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.StateTable) == "" {
		errs = append(errs, errors.New("config: STATE_TABLE is required"))
	}
	if strings.TrimSpace(c.ParamPrefix) == "" {
		errs = append(errs, errors.New("config: PARAM_PREFIX is required"))
	}
	return errors.Join(errs...)
}

// Development reports whether pretty logs should be used.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Env, "local") || strings.EqualFold(c.Env, "development")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
