package app

import (
	"fmt"
	"os"

	"github.com/Tydus/wordleharmony/internal/services/harmony"
	"github.com/Tydus/wordleharmony/pkg/logging"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger  *logging.LoggerConfig `yaml:"logger"`
	Harmony *harmony.Config       `yaml:"harmony"`
}

func defaultConfig() *Config {
	return &Config{
		Logger:  &logging.LoggerConfig{Level: "info"},
		Harmony: harmony.DefaultConfig(),
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults alone.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("logger config is required")
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	if c.Harmony == nil {
		return fmt.Errorf("harmony config is required")
	}

	return c.Harmony.Validate()
}
