package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/pq"
)

// entry is one queued candidate: its accumulated distance and coordinate.
// The ordering priority lives in the queue item.
type entry struct {
	dist float64
	at   grid.Coord
}

func entryCoord(e entry) grid.Coord { return e.at }

// frontier is the queue behaviour the runner needs; both pq.Queue and
// pq.Dedup provide it.
type frontier interface {
	Len() int
	Push(priority float64, e entry) bool
	Pop() (pq.Item[entry], error)
}

// runner holds the mutable state for a single Dijkstra/A* execution.
type runner struct {
	g       *grid.Grid
	mode    Mode
	opts    Options
	start   grid.Coord
	goal    grid.Coord
	queue   frontier
	visited mapset.Set[grid.Coord] // settled cells and walls seen
	dist    map[grid.Coord]float64 // settled cell → finalized distance
	rank    map[grid.Coord]int     // settled cell → settle position
	order   []grid.Coord           // settle order
}

func newRunner(g *grid.Grid, mode Mode, goal grid.Coord, opts Options) *runner {
	capacity := g.Size() * g.Size()
	var q frontier
	if opts.FirstSeen {
		q = pq.NewDedup[entry, grid.Coord](capacity, entryCoord)
	} else {
		q = pq.New[entry](capacity)
	}
	return &runner{
		g:       g,
		mode:    mode,
		opts:    opts,
		start:   g.Start(),
		goal:    goal,
		queue:   q,
		visited: mapset.New[grid.Coord](),
		dist:    make(map[grid.Coord]float64, capacity),
		rank:    make(map[grid.Coord]int, capacity),
		order:   make([]grid.Coord, 0, capacity),
	}
}

// run drives init → process → traceback.
func (r *runner) run() (Result, error) {
	r.init()
	cur, reached, err := r.process()
	if err != nil {
		return Result{}, err
	}
	if !reached {
		return notFound(r.mode, r.order, r.dist), nil
	}

	// The goal's queue entry already carries the settling neighbour's distance
	// plus one edge unit times the End multiplier (1).
	r.settle(cur)

	path, err := r.traceback()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:      r.mode,
		Found:     true,
		Distance:  r.dist[r.goal],
		Path:      path,
		Order:     r.order,
		Distances: r.dist,
	}, nil
}

// init pushes the start with distance 0.
func (r *runner) init() {
	r.queue.Push(r.priority(0, r.start), entry{dist: 0, at: r.start})
}

// priority is the queue key: the distance, plus the weighted heuristic in A* mode.
func (r *runner) priority(dist float64, at grid.Coord) float64 {
	if r.mode == AStar {
		return dist + r.opts.HeuristicWeight*Manhattan(at, r.goal)
	}
	return dist
}

// pop removes the next entry. An empty queue here is a programming error.
func (r *runner) pop() (entry, error) {
	it, err := r.queue.Pop()
	if err != nil {
		return entry{}, fmt.Errorf("search: frontier drained unexpectedly: %w", err)
	}
	return it.Value, nil
}

// process is the main loop. It returns the goal's entry and true once the
// goal is popped, or false when the queue runs dry first.
//
// Loop body:
//  1. A popped cell that already settled is a stale duplicate: skip it.
//  2. Otherwise relax its neighbours, then settle it.
//  3. Stop when the queue is empty before the goal appears.
func (r *runner) process() (entry, bool, error) {
	cur, err := r.pop()
	if err != nil {
		return entry{}, false, err
	}
	for cur.at != r.goal {
		if !r.visited.Has(cur.at) {
			r.relax(cur)
			r.settle(cur)
		}
		if r.queue.Len() == 0 {
			return cur, false, nil
		}
		if cur, err = r.pop(); err != nil {
			return entry{}, false, err
		}
	}
	return cur, true, nil
}

// relax queues every unvisited, passable neighbour of cur. Wall neighbours
// are marked visited on sight since they can never be expanded.
func (r *runner) relax(cur entry) {
	for _, nb := range r.g.Neighbors(cur.at, r.opts.Diagonals) {
		if r.visited.Has(nb.Coord) {
			continue
		}
		kind := r.g.Kind(nb.Coord)
		if !kind.Traversable() {
			r.visited.Put(nb.Coord)
			continue
		}
		nd := cur.dist + nb.Edge.Unit()*kind.Cost()
		r.queue.Push(r.priority(nd, nb.Coord), entry{dist: nd, at: nb.Coord})
	}
}

// settle finalizes cur: records its distance and settle rank, flags the cell
// (the start excepted) and fires the callback.
func (r *runner) settle(cur entry) {
	r.visited.Put(cur.at)
	r.dist[cur.at] = cur.dist
	r.rank[cur.at] = len(r.order)
	r.order = append(r.order, cur.at)
	if cur.at == r.start {
		return
	}
	r.g.MarkVisited(cur.at)
	if r.opts.OnSettle != nil {
		r.opts.OnSettle(cur.at)
	}
}
