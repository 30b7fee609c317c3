package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/termsnake/internal/engine"
)

func TestDefaultIsValid(t *testing.T) {
	tier, err := Default().Validate()
	if err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if tier != engine.SpeedNormal {
		t.Errorf("Expected normal default speed, got %v", tier)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Load("") may pick up a user config on a dev machine; only assert
	// the result validates.
	if _, err := cfg.Validate(); err != nil {
		t.Errorf("Loaded config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("game:\n  speed: insane\n  reward: 5\nstorage:\n  db_path: ./scores.db\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	tier, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if tier != engine.SpeedInsane {
		t.Errorf("Expected insane, got %v", tier)
	}
	if cfg.Game.Reward != 5 {
		t.Errorf("Expected reward 5, got %d", cfg.Game.Reward)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Game.Speed = "ludicrous"
	if _, err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown speed tier")
	}

	cfg = Default()
	cfg.Game.Reward = 0
	if _, err := cfg.Validate(); err == nil {
		t.Error("Expected error for non-positive reward")
	}
}
