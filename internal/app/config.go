package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the config directory, e.g. $HOME/.cryptobox.
	Home string `env:"CRYPTOBOX_HOME"`
	// StorageFile is the key file name inside Home.
	StorageFile string `env:"CRYPTOBOX_STORAGE_FILE" envDefault:"storage.txt"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"CRYPTOBOX_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
