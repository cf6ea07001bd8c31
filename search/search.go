package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/grid"
)

// Run clears g's run state and searches from g.Start() to the goal (g.End()
// unless WithGoal is given) using mode. Settled cells get their Visited flag,
// cells on the found path get OnPath.
//
// A start equal to the goal succeeds immediately with a one-cell path at
// distance 0.
func Run(g *grid.Grid, mode Mode, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !mode.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	goal := g.End()
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %s", grid.ErrOutOfBounds, goal)
	}

	// 3) Fresh flags for this run.
	g.ClearForNewRun()

	// 4) Degenerate case: nothing to search.
	start := g.Start()
	if start == goal {
		g.MarkVisited(start)
		g.MarkOnPath(start)
		return Result{
			Mode:      mode,
			Found:     true,
			Distance:  0,
			Path:      []grid.Coord{start},
			Order:     []grid.Coord{start},
			Distances: map[grid.Coord]float64{start: 0},
		}, nil
	}

	if mode == DFS {
		return newWalker(g, goal, cfg).run(), nil
	}
	return newRunner(g, mode, goal, cfg).run()
}

// notFound builds the result of a run that exhausted its frontier.
func notFound(mode Mode, order []grid.Coord, dist map[grid.Coord]float64) Result {
	return Result{
		Mode:      mode,
		Found:     false,
		Distance:  math.Inf(1),
		Order:     order,
		Distances: dist,
	}
}

// stepCost is the cost of moving from a onto an adjacent b.
func stepCost(g *grid.Grid, a, b grid.Coord) float64 {
	e := grid.Orthogonal
	if a.Row != b.Row && a.Col != b.Col {
		e = grid.Diagonal
	}
	return e.Unit() * g.Cost(b)
}
