package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds every runtime knob, parsed from environment variables.
// A .env file is loaded by the cmd binaries before parsing.
type Config struct {
	Addr         string `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/votes.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	GeminiModel      string        `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	GeneratorTimeout time.Duration `env:"GENERATOR_TIMEOUT" envDefault:"30s"`

	SummaryCacheTTL time.Duration `env:"SUMMARY_CACHE_TTL" envDefault:"30s"`
	SummaryMinVotes int           `env:"SUMMARY_MIN_VOTES" envDefault:"10"`

	// AdminToken, when set, is required in the X-Admin-Token header for
	// administrative endpoints. Real deployments should put a proper
	// authorization layer in front of the reset operation.
	AdminToken string `env:"ADMIN_TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
