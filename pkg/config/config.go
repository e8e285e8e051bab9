// Package config loads the service configuration from the environment.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig is the whole service configuration.
type AppConfig struct {
	Port         string `envconfig:"PORT" default:"8080"`
	DefaultsPath string `envconfig:"DEFAULTS_PATH" default:"config/defaults.yaml"`
}

// Load maps environment variables onto AppConfig. A .env file is applied
// first when present; its absence is not an error.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
