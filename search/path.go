package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
)

// traceback walks from the goal to the start, each step moving to the settled
// neighbour with the smallest recorded distance (earliest settled on ties),
// and flags every cell it passes as on-path. Every settled cell other than the
// start has a strictly closer settled neighbour, so the walk terminates.
func (r *runner) traceback() ([]grid.Coord, error) {
	path := []grid.Coord{r.goal}
	r.g.MarkOnPath(r.goal)

	cur := r.goal
	for cur != r.start {
		best, ok := r.closest(cur)
		if !ok || r.dist[best] >= r.dist[cur] {
			return nil, fmt.Errorf("%w: stuck at %s", ErrBrokenPath, cur)
		}
		r.g.MarkOnPath(best)
		path = append(path, best)
		cur = best
	}

	reverse(path)
	return path, nil
}

// closest returns the settled neighbour of c with the smallest distance.
func (r *runner) closest(c grid.Coord) (grid.Coord, bool) {
	var best grid.Coord
	found := false
	for _, nb := range r.g.Neighbors(c, r.opts.Diagonals) {
		d, ok := r.dist[nb.Coord]
		if !ok {
			continue
		}
		if !found || d < r.dist[best] || (d == r.dist[best] && r.rank[nb.Coord] < r.rank[best]) {
			best, found = nb.Coord, true
		}
	}
	return best, found
}

// reverse flips p in place.
func reverse(p []grid.Coord) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
