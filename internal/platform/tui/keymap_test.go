package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/engine"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{"w", keyMsg('w'), ActionUp},
		{"k vim", keyMsg('k'), ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, ActionDown},
		{"s", keyMsg('s'), ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{"h vim", keyMsg('h'), ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{"d", keyMsg('d'), ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionStart},
		{"space", keyMsg(' '), ActionStart},
		{"p", keyMsg('p'), ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionPause},
		{"r", keyMsg('r'), ActionReset},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionScores},
		{"q", keyMsg('q'), ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"unmapped", keyMsg('z'), ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		dir      engine.Direction
		expected bool
	}{
		{ActionUp, engine.DirUp, true},
		{ActionDown, engine.DirDown, true},
		{ActionLeft, engine.DirLeft, true},
		{ActionRight, engine.DirRight, true},
		{ActionStart, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		dir, ok := tc.action.Direction()
		if ok != tc.expected {
			t.Errorf("Action %d: Direction() ok = %v, expected %v", tc.action, ok, tc.expected)
		}
		if ok && dir != tc.dir {
			t.Errorf("Action %d: Direction() = %v, expected %v", tc.action, dir, tc.dir)
		}
	}
}

func TestMapSpeedKey(t *testing.T) {
	km := NewKeyMapper()

	tiers := map[rune]engine.SpeedTier{
		'1': engine.SpeedSlow,
		'2': engine.SpeedNormal,
		'3': engine.SpeedFast,
		'4': engine.SpeedInsane,
	}
	for r, want := range tiers {
		tier, ok := km.MapSpeedKey(keyMsg(r))
		if !ok || tier != want {
			t.Errorf("MapSpeedKey(%q) = %v/%v, expected %v", r, tier, ok, want)
		}
	}

	if _, ok := km.MapSpeedKey(keyMsg('5')); ok {
		t.Error("MapSpeedKey('5') should not map to a tier")
	}
}
