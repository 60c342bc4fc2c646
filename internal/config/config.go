// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI and MCP entrypoints.
type Config struct {
	// DBPath is the SQLite file holding lifetime progression. The empty
	// string disables persistence.
	DBPath string `env:"CARDCLASH_DB_PATH" envDefault:"cardclash.db"`

	// DeckFile is an optional YAML deck file layered over the built-in
	// registry.
	DeckFile string `env:"CARDCLASH_DECK_FILE"`

	// Seed fixes the fight RNG when nonzero; zero means time-seeded.
	Seed int64 `env:"CARDCLASH_SEED" envDefault:"0"`

	// StartingHand and DrawPerTurn override the fight defaults when set.
	StartingHand int `env:"CARDCLASH_STARTING_HAND" envDefault:"4"`
	DrawPerTurn  int `env:"CARDCLASH_DRAW_PER_TURN" envDefault:"1"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
