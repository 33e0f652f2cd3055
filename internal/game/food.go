package game

import (
	"math/rand"

	"github.com/arcadehub/tui-snake/internal/core"
)

// placeFood picks an unoccupied cell uniformly at random by rejection
// sampling. Returns false when no free cell exists (snake fills the grid);
// callers must treat that as a terminal win rather than retrying.
func placeFood(rng *rand.Rand, grid core.Grid, snake *Snake) (core.Cell, bool) {
	if snake.Len() >= grid.Cells() {
		return core.Cell{}, false
	}
	for {
		c := core.Cell{X: rng.Intn(grid.Size), Y: rng.Intn(grid.Size)}
		if !snake.Occupies(c) {
			return c, true
		}
	}
}
