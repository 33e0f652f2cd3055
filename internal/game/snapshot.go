package game

import (
	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the game state emitted after every tick.
// The render sink and tests consume snapshots; they have no write access
// back to the engine.
type Snapshot struct {
	Phase      Phase
	Won        bool
	Score      int
	Best       int
	TickMs     int
	Snake      []core.Cell // head first
	Food       core.Cell
	GridSize   int
	Difficulty config.Preset
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:      e.phase,
		Won:        e.won,
		Score:      e.score,
		Best:       e.best,
		TickMs:     e.tickMs,
		Snake:      e.snake.Cells(),
		Food:       e.food,
		GridSize:   e.grid.Size,
		Difficulty: e.prst,
	}
}
