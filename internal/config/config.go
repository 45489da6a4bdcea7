// Package config loads environment-variable settings.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings owned by the environment.
type Config struct {
	// HTTPTimeout is the HTTP request timeout in seconds.
	HTTPTimeout int `envconfig:"HTTP_TIMEOUT" default:"5"`
	// LogPath is the log file location.
	LogPath string `envconfig:"LOG_PATH" default:".log/app.log"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// FromEnv loads the configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
