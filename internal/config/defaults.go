package config

import (
	_ "embed"

	"github.com/vovakirdan/termsnake/internal/engine"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Speed:  string(engine.SpeedNormal),
			Reward: 10,
		},
		Storage: StorageConfig{
			DBPath: "~/.termsnake/scores.db",
		},
	}
}
