package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/grid"
)

// Terrain clears g's run flags and drops random Mud patches onto Blank cells.
// Walls and endpoints are never converted.
//
// Steps per patch:
//  1. Pick a uniformly random center; it forms ring 0.
//  2. Turn every Blank cell of the current ring into Mud.
//  3. Each unseen 4-neighbour of the ring joins the next ring with the
//     current probability; the probability then drops by the decay step.
//  4. Stop when a ring comes out empty.
//
// Error Conditions:
//   - ErrNilGrid : if g is nil.
func Terrain(g *grid.Grid, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Stats{}, ErrNilGrid
	}
	rng := cfg.source()
	g.ClearForNewRun()

	patches := cfg.Patches
	if patches == 0 {
		patches = patchCount(g.Size(), rng)
	}

	stats := Stats{Patches: patches}
	for i := 0; i < patches; i++ {
		center := grid.Coord{Row: rng.Intn(g.Size()), Col: rng.Intn(g.Size())}
		stats.Mud += flood(g, center, cfg.Initial, cfg.Step, rng)
	}
	return stats, nil
}

// patchCount picks a count in [max(1,n/10), max(1,n/5)].
func patchCount(n int, rng *rand.Rand) int {
	lo, hi := max(1, n/10), max(1, n/5)
	return lo + rng.Intn(hi-lo+1)
}

// flood grows one patch from center and returns how many cells became Mud.
func flood(g *grid.Grid, center grid.Coord, p, step float64, rng *rand.Rand) int {
	seen := mapset.New[grid.Coord]()
	seen.Put(center)
	ring := []grid.Coord{center}
	converted := 0

	for len(ring) > 0 {
		var next []grid.Coord
		for _, at := range ring {
			if g.Kind(at) == cell.Blank {
				_ = g.SetKind(at, cell.Mud)
				converted++
			}
			for _, nb := range g.Neighbors(at, false) {
				if seen.Has(nb.Coord) {
					continue
				}
				seen.Put(nb.Coord)
				if rng.Float64() < p {
					next = append(next, nb.Coord)
				}
			}
		}
		ring = next
		p -= step
	}
	return converted
}
