package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownMode indicates a Mode outside the declared set.
	ErrUnknownMode = errors.New("search: unknown mode")

	// ErrBadHeuristicWeight indicates a negative or NaN A* heuristic weight.
	ErrBadHeuristicWeight = errors.New("search: heuristic weight must be a non-negative number")

	// ErrBrokenPath indicates the traceback found no settled neighbour closer
	// to the start than the current cell.
	ErrBrokenPath = errors.New("search: path traceback failed")
)

// Mode selects the search algorithm.
type Mode int

const (
	// Dijkstra orders the frontier by accumulated distance.
	Dijkstra Mode = iota
	// AStar orders the frontier by distance plus the Manhattan heuristic.
	AStar
	// DFS explores depth-first with an explicit stack.
	DFS
)

var modeNames = [...]string{"dijkstra", "astar", "dfs"}

// String returns the mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool { return m >= 0 && int(m) < len(modeNames) }

// ParseMode resolves a mode name (case-insensitive; "a*" is accepted for AStar).
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" || n == "a-star" {
		return AStar, nil
	}
	for i, mn := range modeNames {
		if mn == n {
			return Mode(i), nil
		}
	}
	return Dijkstra, fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownMode, name, strings.Join(modeNames[:], ", "))
}

// Options configures Run.
type Options struct {
	Diagonals       bool             // enable 8-connected movement (diagonal unit √2)
	HeuristicWeight float64          // A* heuristic scale; above 1 forfeits optimality
	OnSettle        func(grid.Coord) // called after each non-start cell settles
	FirstSeen       bool             // use the at-most-once queue instead of the lazy heap
	Goal            *grid.Coord      // search target; nil means the grid's End
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns 4-connected movement, heuristic weight 1, no
// callback, the lazy heap and the grid's End as goal.
func DefaultOptions() Options {
	return Options{
		Diagonals:       false,
		HeuristicWeight: 1,
	}
}

// WithDiagonals enables or disables diagonal movement.
func WithDiagonals(enabled bool) Option {
	return func(o *Options) {
		o.Diagonals = enabled
	}
}

// WithHeuristicWeight scales the A* heuristic. It panics on a negative or NaN
// weight; weights above 1 are accepted but break optimality.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) {
			panic(ErrBadHeuristicWeight.Error())
		}
		o.HeuristicWeight = w
	}
}

// WithOnSettle installs a per-cell settle callback for incremental display.
func WithOnSettle(fn func(grid.Coord)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithFirstSeenQueue orders the Dijkstra/A* frontier with the at-most-once
// queue: a cell already queued keeps its first priority until popped.
func WithFirstSeenQueue() Option {
	return func(o *Options) {
		o.FirstSeen = true
	}
}

// WithGoal searches towards c instead of the grid's End.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) {
		o.Goal = &c
	}
}

// Result reports the outcome of one run.
type Result struct {
	// Mode is the algorithm that produced the result.
	Mode Mode

	// Found is true iff the goal's recorded distance is finite.
	Found bool

	// Distance is the goal's recorded distance, +Inf when not found.
	// For DFS it is the cost along the returned path.
	Distance float64

	// Path runs from start to goal inclusive; nil when not found.
	Path []grid.Coord

	// Order lists cells in the order they settled, start first.
	Order []grid.Coord

	// Distances maps every settled cell to its finalized distance.
	// For DFS it holds the cumulative cost along Path.
	Distances map[grid.Coord]float64
}

// Settled returns how many cells were settled.
func (r Result) Settled() int { return len(r.Order) }
