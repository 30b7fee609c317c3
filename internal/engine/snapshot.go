package engine

// Snapshot is a read-only copy of the engine state for the presentation
// layer. Mutating a snapshot never affects the engine.
type Snapshot struct {
	Phase     Phase
	Snake     []Cell // head at index 0
	Food      Cell
	Direction Direction
	Score     int
	HighScore int
	Speed     SpeedTier
}

// Snapshot returns the current state. The snake slice is copied.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]Cell, len(e.snake))
	copy(snake, e.snake)

	return Snapshot{
		Phase:     e.phase,
		Snake:     snake,
		Food:      e.food,
		Direction: e.dir,
		Score:     e.score,
		HighScore: e.highScore,
		Speed:     e.speed,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	return s.Snake[0]
}
