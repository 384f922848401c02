package core

// Grid is a fixed-size coordinate space. It has no mutable state.
type Grid struct {
	Width  int
	Height int
	Policy Policy
}

// NewGrid creates a grid with the given dimensions and topology.
func NewGrid(width, height int, policy Policy) Grid {
	return Grid{Width: width, Height: height, Policy: policy}
}

// IsInside reports whether pos lies within the grid.
func (g Grid) IsInside(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Neighbor returns the adjacent cell in the given direction.
// Under PolicyWrap the result is always inside the grid; under PolicyBounded
// it may be off-grid and callers must check IsInside.
func (g Grid) Neighbor(pos Position, dir Direction) Position {
	dx, dy := dir.Delta()
	next := Position{X: pos.X + dx, Y: pos.Y + dy}
	if g.Policy == PolicyWrap {
		next.X = wrap(next.X, g.Width)
		next.Y = wrap(next.Y, g.Height)
	}
	return next
}

// Adjacent reports whether b is exactly one step from a under this topology.
func (g Grid) Adjacent(a, b Position) bool {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if g.Neighbor(a, d) == b {
			return true
		}
	}
	return false
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index converts an on-grid position to a row-major index.
func (g Grid) Index(pos Position) int {
	return pos.Y*g.Width + pos.X
}

// At converts a row-major index back to a position.
func (g Grid) At(index int) Position {
	return Position{X: index % g.Width, Y: index / g.Width}
}

// Center returns the middle cell.
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// wrap is a modulo that never returns a negative value.
func wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
