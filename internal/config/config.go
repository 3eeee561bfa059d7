// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	APIKey string `env:"API_KEY"`

	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"15s"`
	LLMMaxRetries int           `env:"LLM_MAX_RETRIES" envDefault:"2"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.LLMMaxRetries < 0 || cfg.LLMMaxRetries > 2 {
		return nil, fmt.Errorf("LLM_MAX_RETRIES must be between 0-2, got %d", cfg.LLMMaxRetries)
	}
	return cfg, nil
}

// HasLLM returns true if suggestion augmentation is configured.
func (c *Config) HasLLM() bool {
	return c.OpenAIAPIKey != ""
}

// Validate ensures the configuration is usable by the API server.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	return nil
}
