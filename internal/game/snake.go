package game

import "github.com/arcadehub/tui-snake/internal/core"

// Snake is the ordered sequence of occupied cells, head at index 0.
// While the game is alive no two cells are equal.
type Snake struct {
	cells []core.Cell
}

// NewSnake creates a snake of the given length with its head at head,
// extending backwards opposite to dir. Length must be at least 3.
func NewSnake(head core.Cell, dir core.Direction, length int) *Snake {
	back := dir.Opposite()
	cells := make([]core.Cell, length)
	c := head
	for i := 0; i < length; i++ {
		cells[i] = c
		c = c.Add(back)
	}
	return &Snake{cells: cells}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.cells[0]
}

// Len returns the number of cells the snake occupies.
func (s *Snake) Len() int {
	return len(s.cells)
}

// NextHead computes where the head would move in the given direction.
func (s *Snake) NextHead(dir core.Direction) core.Cell {
	return s.cells[0].Add(dir)
}

// Occupies reports whether any cell of the snake equals c. The full
// pre-move body is checked, tail included: moving into the tail's current
// position counts as a collision even though that cell vacates this tick.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// WillCollide reports whether moving the head to nextHead ends the game:
// out of grid bounds or onto any currently occupied cell.
func (s *Snake) WillCollide(nextHead core.Cell, grid core.Grid) bool {
	return !grid.Contains(nextHead) || s.Occupies(nextHead)
}

// Advance prepends nextHead. If grew is false the tail cell is removed,
// keeping the length constant; if true the snake grows by exactly one.
// The caller guarantees nextHead validity via WillCollide first.
func (s *Snake) Advance(nextHead core.Cell, grew bool) {
	s.cells = append([]core.Cell{nextHead}, s.cells...)
	if !grew {
		s.cells = s.cells[:len(s.cells)-1]
	}
}

// Cells returns a copy of the occupied cells, head first.
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.cells))
	copy(out, s.cells)
	return out
}
