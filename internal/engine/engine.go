// Package engine implements the snake simulation core: the phase state
// machine, the per-tick movement/collision/growth step, direction-input
// buffering and food placement. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable; the
// presentation layer drives it through Tick/SetDirection/TogglePause/Start/
// Reset and reads results through Snapshot.
package engine

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// GridSize is the fixed side length of the square play field.
	GridSize = 20

	// DefaultReward is the score awarded per food when none is configured.
	DefaultReward = 10
)

// Phase is the coarse lifecycle state of a single game run.
type Phase int

const (
	Waiting Phase = iota
	Playing
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a new Engine. Zero values select defaults.
type Options struct {
	Seed   int64     // RNG seed, 0 means time-based
	Reward int       // points per food, 0 means DefaultReward
	Speed  SpeedTier // initial tier, "" means SpeedNormal
}

// Engine holds the authoritative game state. It is not safe for concurrent
// use: the driving loop must serialize calls to all methods.
type Engine struct {
	seed   int64
	rng    *rand.Rand
	reward int
	speed  SpeedTier

	phase      Phase
	snake      []Cell // head at index 0
	food       Cell
	dir        Direction
	pending    Direction
	hasPending bool
	score      int
	highScore  int
}

// New creates an engine in the Waiting phase with a freshly initialized run.
func New(opts Options) *Engine {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Reward == 0 {
		opts.Reward = DefaultReward
	}
	if opts.Speed == "" {
		opts.Speed = SpeedNormal
	}

	e := &Engine{
		seed:   opts.Seed,
		reward: opts.Reward,
		speed:  opts.Speed,
	}
	e.initRun()
	return e
}

// initRun resets snake, food, direction and score to their initial values.
// The RNG is re-seeded, so two runs of the same engine are identical.
func (e *Engine) initRun() {
	e.rng = rand.New(rand.NewSource(e.seed))

	mid := GridSize / 2
	e.snake = []Cell{
		{X: mid, Y: mid}, // Head
		{X: mid - 1, Y: mid},
		{X: mid - 2, Y: mid},
	}
	e.dir = DirRight
	e.hasPending = false
	e.score = 0
	e.placeFood()
}

// Start begins a new run. It is valid only from Waiting and GameOver;
// anywhere else it is a no-op.
func (e *Engine) Start() {
	if e.phase != Waiting && e.phase != GameOver {
		return
	}
	e.initRun()
	e.phase = Playing
}

// Reset returns the engine to Waiting with a fully reinitialized run.
// Callable from any phase. The high score is untouched.
func (e *Engine) Reset() {
	e.initRun()
	e.phase = Waiting
}

// TogglePause flips between Playing and Paused. No-op in Waiting or GameOver.
func (e *Engine) TogglePause() {
	switch e.phase {
	case Playing:
		e.phase = Paused
	case Paused:
		e.phase = Playing
	}
}

// SetDirection buffers a direction change for the next tick. Requests are
// silently dropped outside Playing, while a request is already buffered, or
// when they would reverse the current direction of travel into the neck.
func (e *Engine) SetDirection(d Direction) {
	if e.phase != Playing {
		return
	}
	if e.hasPending {
		return
	}
	if d == e.dir.Opposite() {
		return
	}
	e.pending = d
	e.hasPending = true
}

// Tick advances the simulation by one step. No-op outside Playing.
func (e *Engine) Tick() {
	if e.phase != Playing {
		return
	}

	// Consume the buffered direction before moving; the buffer is cleared
	// every tick whether or not it held a value.
	if e.hasPending {
		e.dir = e.pending
	}
	e.hasPending = false

	dx, dy := e.dir.Vector()
	head := e.snake[0]
	newHead := Cell{X: head.X + dx, Y: head.Y + dy}

	// Wall collision: the illegal head is never materialized.
	if newHead.X < 0 || newHead.X >= GridSize || newHead.Y < 0 || newHead.Y >= GridSize {
		e.endRun()
		return
	}

	// Self collision against the full pre-move body. The tail cell counts
	// as occupied: the head lands before the tail is popped within the
	// same tick, so sliding onto the current tail cell ends the run.
	if e.occupied(newHead) {
		e.endRun()
		return
	}

	e.snake = append([]Cell{newHead}, e.snake...)

	if newHead == e.food {
		e.score += e.reward
		e.placeFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
}

// endRun folds the score into the high score and terminates the run.
// The snake is left exactly as it was before the fatal move.
func (e *Engine) endRun() {
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.hasPending = false
	e.phase = GameOver
}

// placeFood samples random cells until one free of the snake is found.
// Termination is guaranteed while the snake covers a strict subset of the
// grid; the full-grid case is unreachable in play and handled with an
// off-grid sentinel.
func (e *Engine) placeFood() {
	if len(e.snake) >= GridSize*GridSize {
		e.food = Cell{X: -1, Y: -1}
		return
	}
	for {
		c := Cell{X: e.rng.Intn(GridSize), Y: e.rng.Intn(GridSize)}
		if !e.occupied(c) {
			e.food = c
			return
		}
	}
}

// occupied checks whether the snake covers the given cell.
func (e *Engine) occupied(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// SetSpeed selects the tick-interval tier. The engine accepts changes in any
// phase; restricting changes during play is a UI policy. An unrecognized
// tier is a caller defect and returns an error.
func (e *Engine) SetSpeed(t SpeedTier) error {
	if !t.Valid() {
		return fmt.Errorf("engine: unknown speed tier %q", string(t))
	}
	e.speed = t
	return nil
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current run's score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score seen since the engine was created.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Speed returns the currently selected tier.
func (e *Engine) Speed() SpeedTier {
	return e.speed
}
