package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
)

// walker encapsulates state during a depth-first search.
type walker struct {
	g       *grid.Grid
	opts    Options
	start   grid.Coord
	goal    grid.Coord
	stack   []grid.Coord
	parent  map[grid.Coord]grid.Coord // first discoverer of each cell
	visited mapset.Set[grid.Coord]
	order   []grid.Coord
}

func newWalker(g *grid.Grid, goal grid.Coord, opts Options) *walker {
	capacity := g.Size() * g.Size()
	return &walker{
		g:       g,
		opts:    opts,
		start:   g.Start(),
		goal:    goal,
		stack:   make([]grid.Coord, 0, capacity),
		parent:  make(map[grid.Coord]grid.Coord, capacity),
		visited: mapset.New[grid.Coord](),
		order:   make([]grid.Coord, 0, capacity),
	}
}

// run pops the stack until the goal surfaces or the stack empties.
//
// Per pop:
//  1. Walls and already visited cells are discarded.
//  2. The goal ends the search; the path follows parent links to the start.
//  3. Otherwise the cell is visited and every neighbour is pushed; a
//     neighbour's parent is recorded only by its first discoverer.
func (w *walker) run() Result {
	w.stack = append(w.stack, w.start)
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if !w.g.Kind(top).Traversable() || w.visited.Has(top) {
			continue
		}
		if top == w.goal {
			return w.found()
		}

		w.visit(top)
		for _, nb := range w.g.Neighbors(top, w.opts.Diagonals) {
			if w.visited.Has(nb.Coord) {
				continue
			}
			if _, seen := w.parent[nb.Coord]; !seen {
				w.parent[nb.Coord] = top
			}
			w.stack = append(w.stack, nb.Coord)
		}
	}
	return notFound(DFS, w.order, nil)
}

// visit marks c visited, flags it (the start excepted) and fires the callback.
func (w *walker) visit(c grid.Coord) {
	w.visited.Put(c)
	w.order = append(w.order, c)
	if c == w.start {
		return
	}
	w.g.MarkVisited(c)
	if w.opts.OnSettle != nil {
		w.opts.OnSettle(c)
	}
}

// found marks the goal, rebuilds the path from parent links and prices it.
func (w *walker) found() Result {
	w.visit(w.goal)

	path := []grid.Coord{w.goal}
	for at := w.goal; at != w.start; {
		at = w.parent[at]
		path = append(path, at)
	}
	reverse(path)

	dist := make(map[grid.Coord]float64, len(path))
	total := 0.0
	for i, c := range path {
		if i > 0 {
			total += stepCost(w.g, path[i-1], c)
		}
		dist[c] = total
		w.g.MarkOnPath(c)
	}

	return Result{
		Mode:      DFS,
		Found:     true,
		Distance:  total,
		Path:      path,
		Order:     w.order,
		Distances: dist,
	}
}
