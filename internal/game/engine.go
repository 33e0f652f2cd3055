// Package game implements the snake simulation: a deterministic,
// tick-driven state machine advancing snake position, detecting
// collisions, spawning food, tracking score, and adjusting speed.
// It has no I/O; rendering, input, and timing live in the platform layer.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/core"
)

// Phase is the coarse lifecycle state of a single game session.
type Phase int

const (
	// PhasePaused is the initial state; no ticks are simulated.
	PhasePaused Phase = iota
	// PhaseRunning advances the simulation once per clock tick.
	PhaseRunning
	// PhaseGameOver is terminal until an explicit restart.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// BestScoreStore persists the best score per difficulty. Implemented by
// the storage package; the engine only needs these two operations.
type BestScoreStore interface {
	BestScore(difficulty string) (int, error)
	SetBestScore(difficulty string, score int) error
}

// Options configures a new engine.
type Options struct {
	Grid       core.Grid
	Preset     config.Preset
	Difficulty config.Difficulty
	Seed       int64
	Best       BestScoreStore // optional; nil disables best-score persistence
}

// Engine owns the entire game state and mutates it synchronously within
// tick boundaries. Collaborators only ever see Snapshot copies.
type Engine struct {
	grid  core.Grid
	prst  config.Preset
	diff  config.Difficulty
	rng   *rand.Rand
	store BestScoreStore

	snake  *Snake
	queue  *DirectionQueue
	food   core.Cell
	score  int
	best   int
	tickMs int
	phase  Phase
	won    bool
}

const initialSnakeLen = 3

// New creates an engine in the Paused phase with a fresh game state.
// The best score is loaded from the store if one is provided; a missing
// or unreadable value reads as 0.
func New(opts Options) *Engine {
	e := &Engine{
		grid:  opts.Grid,
		prst:  opts.Preset,
		diff:  opts.Difficulty,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		store: opts.Best,
	}
	if e.store != nil {
		if best, err := e.store.BestScore(string(e.prst)); err == nil {
			e.best = best
		}
	}
	e.reset()
	return e
}

// reset rebuilds the per-game state: snake, food, score, tick interval,
// direction queue. Phase becomes Paused; the best score carries over.
func (e *Engine) reset() {
	mid := e.grid.Size / 2
	e.snake = NewSnake(core.Cell{X: mid, Y: mid}, core.DirRight, initialSnakeLen)
	e.queue = NewDirectionQueue(core.DirRight)
	e.score = 0
	e.tickMs = e.diff.InitialTickMs
	e.won = false
	e.phase = PhasePaused

	food, ok := placeFood(e.rng, e.grid, e.snake)
	if !ok {
		// Unreachable with a sane grid size; guard anyway.
		e.phase = PhaseGameOver
		e.won = true
		return
	}
	e.food = food
}

// Restart recreates the whole game state from any phase. The restarted
// game begins Paused and requires an explicit resume.
func (e *Engine) Restart() {
	e.reset()
}

// Resume transitions Paused -> Running. A no-op in any other phase.
func (e *Engine) Resume() {
	if e.phase == PhasePaused {
		e.phase = PhaseRunning
	}
}

// Pause transitions Running -> Paused. A no-op in any other phase.
func (e *Engine) Pause() {
	if e.phase == PhaseRunning {
		e.phase = PhasePaused
	}
}

// TogglePause flips between Paused and Running. A no-op on GameOver.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhasePaused:
		e.phase = PhaseRunning
	case PhaseRunning:
		e.phase = PhasePaused
	}
}

// Enqueue buffers a direction intent for upcoming ticks. Reversals of the
// most recently queued direction are silently dropped.
func (e *Engine) Enqueue(d core.Direction) {
	e.queue.Enqueue(d)
}

// Tick advances the simulation by one step. Only the Running phase
// simulates; in any other phase the call is a no-op. The returned
// snapshot reflects the state after the step.
func (e *Engine) Tick() Snapshot {
	if e.phase != PhaseRunning {
		return e.Snapshot()
	}

	dir := e.queue.ConsumeOne()
	nextHead := e.snake.NextHead(dir)

	if e.snake.WillCollide(nextHead, e.grid) {
		e.phase = PhaseGameOver
		return e.Snapshot()
	}

	grew := nextHead == e.food
	e.snake.Advance(nextHead, grew)

	if grew {
		e.score++
		if e.score > e.best {
			e.best = e.score
			if e.store != nil {
				// Best-effort persist; the game continues regardless.
				e.store.SetBestScore(string(e.prst), e.best) //nolint:errcheck
			}
		}
		e.applySpeedCurve()

		food, ok := placeFood(e.rng, e.grid, e.snake)
		if !ok {
			// Snake fills the grid: terminal win instead of an
			// unbounded sampling loop.
			e.phase = PhaseGameOver
			e.won = true
			return e.Snapshot()
		}
		e.food = food
	}

	return e.Snapshot()
}

// applySpeedCurve shrinks the tick interval each time the configured
// number of foods has cumulatively been eaten, floored at MinTickMs.
func (e *Engine) applySpeedCurve() {
	if e.score == 0 || e.score%e.diff.SpeedupFoodInterval != 0 {
		return
	}
	next := int(math.Floor(float64(e.tickMs) * e.diff.SpeedupFactor))
	e.tickMs = core.Max(e.diff.MinTickMs, next)
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Best returns the best score seen for this difficulty, including the
// current game.
func (e *Engine) Best() int {
	return e.best
}

// Won reports whether a GameOver phase is a full-grid win.
func (e *Engine) Won() bool {
	return e.won
}

// TickInterval returns the current period between simulation steps.
func (e *Engine) TickInterval() time.Duration {
	return time.Duration(e.tickMs) * time.Millisecond
}

// Preset returns the difficulty preset this game was started with.
// Immutable for the lifetime of the engine.
func (e *Engine) Preset() config.Preset {
	return e.prst
}

// Grid returns the playing field.
func (e *Engine) Grid() core.Grid {
	return e.grid
}
