package maze

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/grid"
)

// Generate replaces g's layout with a randomized Prim maze. Run flags are
// cleared and every non-endpoint cell ends up Wall or Blank.
//
// Error Conditions:
//   - ErrNilGrid           : if g is nil.
//   - grid.ErrOutOfBounds  : if WithSeedCell names a cell outside g.
func Generate(g *grid.Grid, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Stats{}, ErrNilGrid
	}
	seed := g.Start()
	if cfg.SeedCell != nil {
		seed = *cfg.SeedCell
	}
	if !g.InBounds(seed) {
		return Stats{}, fmt.Errorf("%w: seed %s", grid.ErrOutOfBounds, seed)
	}

	c := newCarver(g, cfg.source())
	c.carve(seed)

	stats := Stats{Carved: c.opened}
	for _, target := range []grid.Coord{g.End(), g.Start()} {
		n, err := reconnect(g, seed, target)
		if err != nil {
			return stats, err
		}
		stats.Bridged += n
	}
	return stats, nil
}

// carver holds the state of one Prim run. Endpoints count as closed until
// carving reaches them, so they join the maze like any other cell.
type carver struct {
	g        *grid.Grid
	rng      *rand.Rand
	open     mapset.Set[grid.Coord]
	frontier []grid.Coord
	queued   mapset.Set[grid.Coord]
	opened   int
}

func newCarver(g *grid.Grid, rng *rand.Rand) *carver {
	return &carver{
		g:      g,
		rng:    rng,
		open:   mapset.New[grid.Coord](),
		queued: mapset.New[grid.Coord](),
	}
}

// carve fills g with walls and grows the maze from seed until the frontier
// is exhausted.
func (c *carver) carve(seed grid.Coord) {
	c.g.Fill(cell.Wall)
	c.openCell(seed)

	for len(c.frontier) > 0 {
		// Uniform pick, swap-remove; membership leaves with it.
		i := c.rng.Intn(len(c.frontier))
		at := c.frontier[i]
		last := len(c.frontier) - 1
		c.frontier[i] = c.frontier[last]
		c.frontier = c.frontier[:last]
		c.queued.Remove(at)

		if c.openNeighbours(at) <= 1 {
			c.openCell(at)
		}
	}
}

// openCell marks at open, clears its wall and queues its closed neighbours.
func (c *carver) openCell(at grid.Coord) {
	c.open.Put(at)
	c.opened++
	if c.g.Kind(at) == cell.Wall {
		_ = c.g.SetKind(at, cell.Blank)
	}
	for _, nb := range c.g.Neighbors(at, false) {
		if c.open.Has(nb.Coord) || c.queued.Has(nb.Coord) {
			continue
		}
		c.queued.Put(nb.Coord)
		c.frontier = append(c.frontier, nb.Coord)
	}
}

// openNeighbours counts the carved 4-neighbours of at. Uncarved endpoints do
// not count although they are not walls: counting them would reject every
// cell next to End and leave End sealed off.
func (c *carver) openNeighbours(at grid.Coord) int {
	n := 0
	for _, nb := range c.g.Neighbors(at, false) {
		if c.open.Has(nb.Coord) {
			n++
		}
	}
	return n
}

// reconnect opens the fewest walls needed to join target to seed's region
// and reports how many it opened.
func reconnect(g *grid.Grid, seed, target grid.Coord) (int, error) {
	if g.Connected(seed, target, grid.Conn4) {
		return 0, nil
	}
	_, walls, err := g.Bridge(seed, target)
	if err != nil {
		return 0, fmt.Errorf("maze: reconnect %s: %w", target, err)
	}
	for _, w := range walls {
		if err := g.SetKind(w, cell.Blank); err != nil {
			return 0, err
		}
	}
	return len(walls), nil
}
