package engine

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrNoRun indicates an operation that needs a previous run.
var ErrNoRun = errors.New("engine: no search has run")

// Options configures an Engine.
type Options struct {
	Size            int              // grid dimension N
	Start, End      *grid.Coord      // endpoints; nil picks grid.DefaultEndpoints
	Diagonals       bool             // 8-connected movement
	Mode            search.Mode      // mode used by Solve
	HeuristicWeight float64          // A* heuristic scale
	OnSettle        func(grid.Coord) // per-cell callback for direct runs only
	Seed            int64            // generator seed; 0 is time-based
	Logger          *logrus.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns a config.DefaultSize grid, 4-connected Dijkstra with
// heuristic weight 1, a time-based seed and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Size:            config.DefaultSize,
		Mode:            search.Dijkstra,
		HeuristicWeight: 1,
	}
}

// WithSize sets the grid dimension.
func WithSize(n int) Option {
	return func(o *Options) {
		o.Size = n
	}
}

// WithEndpoints places start and end explicitly.
func WithEndpoints(start, end grid.Coord) Option {
	return func(o *Options) {
		o.Start, o.End = &start, &end
	}
}

// WithDiagonals enables or disables diagonal movement.
func WithDiagonals(enabled bool) Option {
	return func(o *Options) {
		o.Diagonals = enabled
	}
}

// WithMode sets the mode Solve runs.
func WithMode(m search.Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithHeuristicWeight scales the A* heuristic. New panics on a negative or
// NaN weight through search.WithHeuristicWeight.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		o.HeuristicWeight = w
	}
}

// WithOnSettle installs the settle callback used by RunSearch and Solve.
func WithOnSettle(fn func(grid.Coord)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithSeed seeds the engine's generator source. Zero means time-based.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// discardLogger returns a logger that drops everything.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Run records one search executed by the engine.
type Run struct {
	ID      uuid.UUID     // unique per run
	Mode    search.Mode   // algorithm used
	Resolve bool          // true when triggered by an edit rather than RunSearch
	Result  search.Result // outcome, including path and settle order
}
