// Package core provides fundamental types for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure and testable.
package core

// Cell is a single grid coordinate. Cells are value types compared by
// equality.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is one of the four unit vectors. The zero value is not a valid
// movement direction.
type Direction struct {
	DX, DY int
}

// The four playable directions. Y grows downward, matching screen rows.
var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d and other sum to the zero vector.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX+other.DX == 0 && d.DY+other.DY == 0
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps an intent keyword to a direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return Direction{}, false
	}
}

// Grid is a fixed-size square coordinate space. No wraparound: cells
// outside [0, Size) on either axis are out of bounds.
type Grid struct {
	Size int
}

// NewGrid creates a grid with the given side length.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// Contains reports whether the cell lies within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Cells returns the total number of cells in the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
