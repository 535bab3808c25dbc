package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-level settings. JWTSecret has no default on
// purpose: a process without a signing secret must not start.
type Config struct {
	Port      string `env:"TASKBOX_PORT" envDefault:"8080"`
	DBPath    string `env:"TASKBOX_DB_PATH" envDefault:"taskbox.db"`
	JWTSecret string `env:"TASKBOX_JWT_SECRET,required,notEmpty"`
	LogLevel  string `env:"TASKBOX_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
