package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/clock"
	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/engine"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
	"github.com/vovakirdan/termsnake/internal/storage"
)

var flagSpeed string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a snake session in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start / restart
  P/Esc        - Pause
  R            - Reset
  1-4          - Speed tier (outside active play)
  Tab          - Score history
  Q/Ctrl+C     - Quit

Examples:
  termsnake play
  termsnake play --speed insane
  termsnake play --seed 42
  termsnake play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed tier: slow, normal, fast, insane (overrides config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSpeed != "" {
		cfg.Game.Speed = flagSpeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	tier, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial frame; resizes arrive as messages later
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	eng := engine.New(engine.Options{
		Seed:   flagSeed,
		Reward: cfg.Game.Reward,
		Speed:  tier,
	})
	clk := clock.New(eng.Speed())

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(eng, clk, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
