package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a grid dimension too small to hold distinct endpoints.
	ErrBadSize = errors.New("grid: dimension must be at least 2")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrSameEndpoints indicates start and end resolved to the same cell.
	ErrSameEndpoints = errors.New("grid: start and end must differ")
	// ErrNoPath indicates Bridge could not reach the target.
	ErrNoPath = errors.New("grid: no path between cells")
)

// Coord is a 0-indexed (row, column) pair.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Edge classifies the step between two neighbouring cells.
type Edge uint8

const (
	// Orthogonal steps change exactly one coordinate.
	Orthogonal Edge = iota
	// Diagonal steps change both coordinates.
	Diagonal
)

// Unit returns the base traversal cost of e: 1 for orthogonal, √2 for diagonal.
func (e Edge) Unit() float64 {
	if e == Diagonal {
		return math.Sqrt2
	}
	return 1
}

// String returns "orthogonal" or "diagonal".
func (e Edge) String() string {
	if e == Diagonal {
		return "diagonal"
	}
	return "orthogonal"
}

// Neighbor is one entry produced by Grid.Neighbors.
type Neighbor struct {
	Coord Coord
	Edge  Edge
}

// Connectivity selects neighbour connectivity for region analysis.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Offsets in the order the search expands them: down, up, right, left,
// then the diagonals.
var (
	orthogonalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Options holds construction parameters for New.
type Options struct {
	Start *Coord // nil selects the default start
	End   *Coord // nil selects the default end
}

// Option configures New.
type Option func(*Options)

// WithStart places the start cell at c.
func WithStart(c Coord) Option {
	return func(o *Options) {
		o.Start = &c
	}
}

// WithEnd places the end cell at c.
func WithEnd(c Coord) Option {
	return func(o *Options) {
		o.End = &c
	}
}

// DefaultEndpoints returns the default start and end for an n×n grid:
// one cell in from opposite corners, or the corners themselves when n < 4.
func DefaultEndpoints(n int) (start, end Coord) {
	if n < 4 {
		return Coord{0, 0}, Coord{n - 1, n - 1}
	}
	return Coord{1, 1}, Coord{n - 2, n - 2}
}
