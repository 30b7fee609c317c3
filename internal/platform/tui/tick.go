// Package tui provides the Bubble Tea presentation layer for termsnake.
// It handles the terminal UI loop, input mapping and rendering; all game
// rules live in the engine package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/clock"
)

// TickMsg is sent for every game clock tick.
type TickMsg time.Time

// waitForTick blocks until the clock fires and forwards the tick as a
// message. Returns nil once the clock has been stopped.
func waitForTick(c *clock.Clock) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-c.C()
		if !ok {
			return nil
		}
		return TickMsg(t)
	}
}
