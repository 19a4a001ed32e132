package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all bot configuration.
type Config struct {
	Token     string `env:"DISCORD_TOKEN"`
	Prefix    string `env:"COMMAND_PREFIX" envDefault:"!"`
	JoinEmoji string `env:"JOIN_EMOJI"     envDefault:"👍"`
	Language  string `env:"LANGUAGE"       envDefault:"en"`
	LogLevel  string `env:"LOG_LEVEL"      envDefault:"info"`
}

// Load reads configuration from the environment after loading envFile, if
// it exists. Variables already set in the environment take precedence.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate reports missing or malformed settings.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Prefix == "" {
		return fmt.Errorf("COMMAND_PREFIX must not be empty")
	}
	if c.JoinEmoji == "" {
		return fmt.Errorf("JOIN_EMOJI must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
