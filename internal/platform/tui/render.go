package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnake/internal/engine"
)

// Each grid cell renders two characters wide so the field is roughly square
// in a terminal.
const cellWidth = 2

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))

	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tooSmallMsg  = "Terminal too small - resize to continue"
	minBoardCols = engine.GridSize*cellWidth + 2 // board plus border
	minBoardRows = engine.GridSize + 4           // board, border, HUD, status
)

// renderGame draws the play field, HUD and status line for a snapshot,
// centered in the available terminal area.
func renderGame(snap engine.Snapshot, width, height int) string {
	if width < minBoardCols || height < minBoardRows {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, tooSmallMsg)
	}

	hud := renderHUD(snap)
	board := boardStyle.Render(renderBoard(snap))
	status := renderStatus(snap)

	view := lipgloss.JoinVertical(lipgloss.Center, hud, board, status)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}

// renderBoard draws the 20x20 grid with snake and food.
func renderBoard(snap engine.Snapshot) string {
	occupied := make(map[engine.Cell]int, len(snap.Snake))
	for i, c := range snap.Snake {
		occupied[c] = i
	}

	var sb strings.Builder
	for y := 0; y < engine.GridSize; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < engine.GridSize; x++ {
			cell := engine.Cell{X: x, Y: y}
			switch idx, ok := occupied[cell]; {
			case ok && idx == 0:
				sb.WriteString(headStyle.Render("██"))
			case ok:
				sb.WriteString(bodyStyle.Render("▓▓"))
			case cell == snap.Food:
				sb.WriteString(foodStyle.Render("◆ "))
			default:
				sb.WriteString(emptyStyle.Render("· "))
			}
		}
	}
	return sb.String()
}

// renderHUD draws the score line above the board.
func renderHUD(snap engine.Snapshot) string {
	return hudStyle.Render(fmt.Sprintf(
		"Score: %d   Best: %d   Speed: %s", snap.Score, snap.HighScore, snap.Speed,
	))
}

// renderStatus draws the phase-dependent line under the board.
func renderStatus(snap engine.Snapshot) string {
	switch snap.Phase {
	case engine.Waiting:
		return statusStyle.Render("Press Enter to start") + "\n" +
			hintStyle.Render("arrows/wasd move · 1-4 speed · tab scores · q quit")
	case engine.Paused:
		return statusStyle.Render("Paused") + "\n" +
			hintStyle.Render("p resume · r reset · q quit")
	case engine.GameOver:
		return statusStyle.Render(fmt.Sprintf("Game over - score %d", snap.Score)) + "\n" +
			hintStyle.Render("enter restart · tab scores · q quit")
	default:
		return "\n" + hintStyle.Render("p pause · q quit")
	}
}
