package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/engine"
)

// Action represents a semantic game action, abstracted from physical key
// presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionStart  // Enter/Space - start or restart a run
	ActionPause  // P/Esc - pause/unpause
	ActionReset  // R - back to the waiting screen
	ActionScores // Tab - toggle the scoreboard
	ActionQuit   // Q/Ctrl+C - exit
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "w", "k":
		return ActionUp
	case "down", "s", "j":
		return ActionDown
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case "enter", " ":
		return ActionStart
	case "p", "esc":
		return ActionPause
	case "r":
		return ActionReset
	case "tab":
		return ActionScores
	}
	return ActionNone
}

// Direction maps a movement action to an engine direction.
// The second result is false for non-movement actions.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.DirUp, true
	case ActionDown:
		return engine.DirDown, true
	case ActionLeft:
		return engine.DirLeft, true
	case ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// MapSpeedKey translates the number keys 1-4 to speed tiers.
func (km *KeyMapper) MapSpeedKey(msg tea.KeyMsg) (engine.SpeedTier, bool) {
	switch msg.String() {
	case "1":
		return engine.SpeedSlow, true
	case "2":
		return engine.SpeedNormal, true
	case "3":
		return engine.SpeedFast, true
	case "4":
		return engine.SpeedInsane, true
	}
	return "", false
}
