// Package config provides YAML-based configuration loading for termsnake.
package config

import (
	"fmt"

	"github.com/vovakirdan/termsnake/internal/engine"
)

// Config is the top-level termsnake configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
}

// GameConfig holds the engine parameters a player may tune.
type GameConfig struct {
	Speed  string `yaml:"speed"`  // slow, normal, fast, insane
	Reward int    `yaml:"reward"` // points per food
}

// StorageConfig holds score persistence parameters.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks the configuration and returns the parsed speed tier.
func (c Config) Validate() (engine.SpeedTier, error) {
	tier, err := engine.ParseSpeed(c.Game.Speed)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	if c.Game.Reward <= 0 {
		return "", fmt.Errorf("config: reward must be positive, got %d", c.Game.Reward)
	}
	return tier, nil
}
