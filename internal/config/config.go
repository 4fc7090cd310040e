package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

// Config contains service configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	JWT      JWT    `envPrefix:"JWT_"`
	Dynamo   Dynamo `envPrefix:"DYNAMO_"`
}

// JWT contains token signing parameters. The secret is loaded once at
// process start and must never be logged.
type JWT struct {
	Secret string `env:"SECRET"`
}

// Dynamo contains storage connection parameters. Endpoint overrides the
// SDK's resolved endpoint when pointing at a local instance; leave it empty
// to use the real service.
type Dynamo struct {
	Region    string `env:"REGION" envDefault:"us-east-2"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// NewConfig loads configuration from environment variables and validates it.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that startup-critical parameters are present. Failures
// here are fatal: the process must not start without them.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("%w: JWT_SECRET is not set", model.ErrConfiguration)
	}
	if c.Dynamo.Region == "" {
		return fmt.Errorf("%w: DYNAMO_REGION is not set", model.ErrConfiguration)
	}
	return nil
}
