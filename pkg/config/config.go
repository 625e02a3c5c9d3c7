// ABOUTME: Configuration management for the CLI with environment variable support
// ABOUTME: The core client never reads the environment; only cmd consumes this

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the CLI configuration
type Config struct {
	// Channel identifiers; FeedURL takes precedence when set
	Channel ChannelConfig

	// HTTP contains transport settings
	HTTP HTTPConfig
}

// ChannelConfig identifies the channel to watch
type ChannelConfig struct {
	// ID is the channel identifier (e.g. "UC...")
	ID string

	// Username is the channel user name, with or without a leading "@"
	Username string

	// FeedURL is a direct feed URL, used verbatim
	FeedURL string
}

// HTTPConfig holds transport settings
type HTTPConfig struct {
	// TimeoutSeconds is the per-request timeout
	TimeoutSeconds int

	// MaxRetries is the feed fetch attempt ceiling
	MaxRetries int

	// Debug enables debug-level logging
	Debug bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Channel: ChannelConfig{
			ID:       os.Getenv("CHANNEL_ID"),
			Username: os.Getenv("CHANNEL_USERNAME"),
			FeedURL:  os.Getenv("FEED_URL"),
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT", 10),
			MaxRetries:     getEnvAsIntOrDefault("MAX_RETRIES", 3),
			Debug:          getEnvOrDefault("DEBUG", "") != "",
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Channel.ID == "" && c.Channel.Username == "" && c.Channel.FeedURL == "" {
		return errors.New("must set CHANNEL_ID, CHANNEL_USERNAME, or FEED_URL")
	}

	if c.HTTP.TimeoutSeconds < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if c.HTTP.MaxRetries < 1 {
		return errors.New("max retries must be at least 1")
	}

	return nil
}
