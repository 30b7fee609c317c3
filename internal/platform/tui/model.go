package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/clock"
	"github.com/vovakirdan/termsnake/internal/engine"
	"github.com/vovakirdan/termsnake/internal/storage"
)

// Model is the Bubble Tea model driving a single game session. It is the
// sole owner of the engine: every engine call happens inside Update, so
// the single-writer contract of the engine holds.
type Model struct {
	eng        *engine.Engine
	clk        *clock.Clock
	store      *storage.Store
	keys       *KeyMapper
	width      int
	height     int
	scoreboard ScoreboardModel
	showScores bool
	scoreSaved bool // Whether the current run's score has been persisted
	quitting   bool
}

// NewModel creates a game model around an engine and its clock.
// store may be nil; the game then runs without score history.
func NewModel(eng *engine.Engine, clk *clock.Clock, store *storage.Store, width, height int) Model {
	return Model{
		eng:        eng,
		clk:        clk,
		store:      store,
		keys:       NewKeyMapper(),
		width:      width,
		height:     height,
		scoreboard: NewScoreboardModel(store, width, height),
	}
}

// Init starts listening on the game clock.
func (m Model) Init() tea.Cmd {
	return waitForTick(m.clk)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scoreboard.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps key presses onto engine entry points.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m.handleScoreboardKey(msg)
	}

	// Speed tier keys are accepted only outside active play. This is a UI
	// policy: the engine itself allows tier changes in any phase.
	if tier, ok := m.keys.MapSpeedKey(msg); ok {
		if m.eng.Phase() != engine.Playing {
			if err := m.eng.SetSpeed(tier); err == nil {
				m.clk.SetSpeed(tier)
			}
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)

	if dir, ok := action.Direction(); ok {
		m.eng.SetDirection(dir)
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.quitting = true
		m.clk.Stop()
		return m, tea.Quit
	case ActionStart:
		m.eng.Start()
		if m.eng.Phase() == engine.Playing {
			m.scoreSaved = false
		}
	case ActionPause:
		m.eng.TogglePause()
	case ActionReset:
		m.eng.Reset()
		m.scoreSaved = false
	case ActionScores:
		m.showScores = true
		m.scoreboard.Reload()
	}

	return m, nil
}

// handleScoreboardKey routes input while the scoreboard is visible.
func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		m.clk.Stop()
		return m, tea.Quit
	case ActionScores, ActionPause:
		// Tab or Esc closes the scoreboard
		m.showScores = false
		return m, nil
	}

	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	return m, cmd
}

// handleTick advances the engine one step and persists finished runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.eng.Phase()
	m.eng.Tick()

	if m.eng.Phase() == engine.GameOver && before != engine.GameOver {
		m.saveScore()
	}

	return m, waitForTick(m.clk)
}

// saveScore records the finished run once per game over.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	snap := m.eng.Snapshot()
	if snap.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(snap.Score, string(snap.Speed))
	}
	m.scoreSaved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}
	return renderGame(m.eng.Snapshot(), m.width, m.height)
}

// Run starts a Bubble Tea program for the given engine and blocks until the
// player quits.
func Run(eng *engine.Engine, clk *clock.Clock, store *storage.Store, width, height int) error {
	model := NewModel(eng, clk, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	clk.Stop()
	return err
}
