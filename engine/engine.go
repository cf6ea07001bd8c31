package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
)

// Engine owns a grid and the state of its most recent search.
type Engine struct {
	g      *grid.Grid
	opts   Options
	log    *logrus.Logger
	rng    *rand.Rand
	sopts  []search.Option // diagonals and heuristic weight, checked by New
	last   *Run
	ran    bool // a search has run and nothing has cleared it since
	solved bool // that search found a path
}

// New builds an engine over a fresh all-Blank grid.
func New(opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var gopts []grid.Option
	if cfg.Start != nil {
		gopts = append(gopts, grid.WithStart(*cfg.Start))
	}
	if cfg.End != nil {
		gopts = append(gopts, grid.WithEnd(*cfg.End))
	}
	g, err := grid.New(cfg.Size, gopts...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}
	// search.WithHeuristicWeight panics here on a bad weight, not mid-run.
	sopts := []search.Option{
		search.WithDiagonals(cfg.Diagonals),
		search.WithHeuristicWeight(cfg.HeuristicWeight),
	}
	check := search.DefaultOptions()
	for _, opt := range sopts {
		opt(&check)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		g:      g,
		opts:   cfg,
		log:    log,
		rng:    rand.New(rand.NewSource(seed)),
		sopts:  sopts,
	}, nil
}

// FromConfig builds an engine from loaded settings. Without WithLogger the
// engine logs to stderr at c.LogLevel. opts are applied after c.
func FromConfig(c config.Config, opts ...Option) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetLevel(c.LogLevel)

	base := []Option{
		WithSize(c.Size),
		WithDiagonals(c.Diagonals),
		WithMode(c.Mode),
		WithHeuristicWeight(c.HeuristicWeight),
		WithSeed(c.Seed),
		WithLogger(log),
	}
	return New(append(base, opts...)...)
}

// Grid returns the engine's grid for read access. Mutate it through the
// engine so the re-solve policy sees every edit.
func (e *Engine) Grid() *grid.Grid { return e.g }

// CellState returns the render snapshot of c.
func (e *Engine) CellState(c grid.Coord) (cell.State, error) { return e.g.State(c) }

// Solved reports whether an active path exists.
func (e *Engine) Solved() bool { return e.solved }

// LastRun returns the most recent run, direct or re-solve.
func (e *Engine) LastRun() (Run, bool) {
	if e.last == nil {
		return Run{}, false
	}
	return *e.last, true
}

// RunSearch clears run state and searches with mode. It reports whether the
// goal was reached.
func (e *Engine) RunSearch(mode search.Mode) (bool, error) {
	return e.run(mode, false)
}

// Solve runs the configured mode.
func (e *Engine) Solve() (bool, error) { return e.RunSearch(e.opts.Mode) }

// Resolve re-runs the last mode without a settle callback, as an edit would.
func (e *Engine) Resolve() (bool, error) {
	if e.last == nil {
		return false, ErrNoRun
	}
	return e.run(e.last.Mode, true)
}

// SetCellKind paints k onto c; see grid.SetKind for the rules. Painting an
// on-path cell while a path is active re-solves.
func (e *Engine) SetCellKind(c grid.Coord, k cell.Kind) error {
	hit := e.solved && e.g.OnPath(c) && !e.g.Kind(c).Endpoint()
	if err := e.g.SetKind(c, k); err != nil {
		return err
	}
	if !hit {
		return nil
	}
	e.log.WithFields(logrus.Fields{"cell": c, "kind": k}).Debug("on-path edit")
	_, err := e.Resolve()
	return err
}

// MoveStart relocates the start onto a Blank cell. It reports whether the
// move happened; a move after a run re-solves, whether or not that run
// found a path.
func (e *Engine) MoveStart(c grid.Coord) (bool, error) {
	return e.move(c, "start", e.g.MoveStart)
}

// MoveEnd relocates the end onto a Blank cell. It reports whether the move
// happened; a move after a run re-solves, whether or not that run found a
// path.
func (e *Engine) MoveEnd(c grid.Coord) (bool, error) {
	return e.move(c, "end", e.g.MoveEnd)
}

func (e *Engine) move(c grid.Coord, which string, fn func(grid.Coord) bool) (bool, error) {
	if !fn(c) {
		return false, nil
	}
	if !e.ran {
		return true, nil
	}
	e.log.WithFields(logrus.Fields{"endpoint": which, "cell": c}).Debug("endpoint moved")
	_, err := e.Resolve()
	return true, err
}

// ClearForNewRun drops every visited and on-path flag and the active path.
func (e *Engine) ClearForNewRun() {
	e.g.ClearForNewRun()
	e.ran, e.solved = false, false
}

// Reset returns the grid to all Blank and drops the active path.
func (e *Engine) Reset() {
	e.g.Reset()
	e.ran, e.solved = false, false
	e.log.Info("grid reset")
}

// GenerateMaze replaces the layout with a randomized Prim maze drawn from the
// engine's source. opts follow it, so maze.WithSeed(n) replays a fixed maze.
func (e *Engine) GenerateMaze(opts ...maze.Option) error {
	e.ran, e.solved = false, false
	stats, err := maze.Generate(e.g, append([]maze.Option{maze.WithRand(e.rng)}, opts...)...)
	if err != nil {
		return err
	}
	generations.WithLabelValues("maze").Inc()
	bridgedWalls.Add(float64(stats.Bridged))
	e.log.WithFields(logrus.Fields{
		"carved":  stats.Carved,
		"bridged": stats.Bridged,
	}).Info("maze generated")
	return nil
}

// GenerateTerrain drops Mud patches drawn from the engine's source. A
// positive patches fixes the count; 0 picks one from the grid size.
func (e *Engine) GenerateTerrain(patches int, opts ...maze.Option) error {
	if patches < 0 {
		return fmt.Errorf("%w: %d", maze.ErrBadPatches, patches)
	}
	e.ran, e.solved = false, false
	base := []maze.Option{maze.WithRand(e.rng), maze.WithPatches(patches)}
	stats, err := maze.Terrain(e.g, append(base, opts...)...)
	if err != nil {
		return err
	}
	generations.WithLabelValues("terrain").Inc()
	e.log.WithFields(logrus.Fields{
		"patches": stats.Patches,
		"mud":     stats.Mud,
	}).Info("terrain generated")
	return nil
}

// run executes one search and records it.
func (e *Engine) run(mode search.Mode, resolve bool) (bool, error) {
	sopts := append([]search.Option(nil), e.sopts...)
	trigger := triggerResolve
	if !resolve {
		trigger = triggerRun
		if e.opts.OnSettle != nil {
			sopts = append(sopts, search.WithOnSettle(e.opts.OnSettle))
		}
	}

	id := uuid.New()
	began := time.Now()
	res, err := search.Run(e.g, mode, sopts...)
	searchRuns.WithLabelValues(mode.String(), resultLabel(res.Found, err), trigger).Inc()
	if err != nil {
		e.ran, e.solved = false, false
		e.log.WithFields(logrus.Fields{"run": id, "mode": mode}).WithError(err).Error("search failed")
		return false, err
	}
	searchDuration.WithLabelValues(mode.String()).Observe(time.Since(began).Seconds())
	searchSettled.WithLabelValues(mode.String()).Observe(float64(res.Settled()))

	e.last = &Run{ID: id, Mode: mode, Resolve: resolve, Result: res}
	e.ran, e.solved = true, res.Found
	e.log.WithFields(logrus.Fields{
		"run":      id,
		"mode":     mode,
		"trigger":  trigger,
		"found":    res.Found,
		"settled":  res.Settled(),
		"distance": res.Distance,
	}).Debug("search finished")
	return res.Found, nil
}
