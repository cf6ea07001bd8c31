package grid

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/pathgrid/cell"
)

// Bridge finds the fewest Wall cells that must be opened so that to becomes
// 4-connected to the traversable region containing from.
// Returns the route (from the region's edge to to, inclusive) and the walls
// on it in route order.
//
// Behavior:
//  1. Seed a 0-1 BFS with every cell of from's region at cost 0.
//  2. Stepping onto a traversable cell costs 0, onto a Wall costs 1.
//  3. Stop when to is dequeued; rebuild the route from predecessors.
//
// Complexity: O(N²) time and memory.
func (g *Grid) Bridge(from, to Coord) (route, walls []Coord, err error) {
	if !g.InBounds(from) {
		return nil, nil, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	if !g.InBounds(to) {
		return nil, nil, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}

	src := g.Region(from, Conn4)
	if src == nil {
		src = []Coord{from}
	}

	total := g.n * g.n
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, c := range src {
		i := g.index(c)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := g.index(to)
	found := false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			found = true
			break
		}
		uc := g.coordinate(u)
		for _, d := range orthogonalOffsets {
			vc := Coord{uc.Row + d[0], uc.Col + d[1]}
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if g.Kind(vc) == cell.Wall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return nil, nil, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
	}

	for at := target; at >= 0; at = prev[at] {
		route = append(route, g.coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	for _, c := range route {
		if g.Kind(c) == cell.Wall {
			walls = append(walls, c)
		}
	}
	return route, walls, nil
}
