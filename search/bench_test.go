package search_test

import (
	"testing"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// benchGrid returns an n×n grid with a comb of walls: every fourth column is
// walled except for a gap alternating between the top and bottom rows.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	g, err := grid.New(n, grid.WithStart(grid.Coord{Row: 0, Col: 0}), grid.WithEnd(grid.Coord{Row: n - 1, Col: n - 1}))
	if err != nil {
		b.Fatal(err)
	}
	for c := 2; c < n-1; c += 4 {
		gap := 0
		if (c/4)%2 == 0 {
			gap = n - 1
		}
		for r := 0; r < n; r++ {
			if r != gap {
				_ = g.SetKind(grid.Coord{Row: r, Col: c}, cell.Wall)
			}
		}
	}
	return g
}

func benchmarkRun(b *testing.B, mode search.Mode, opts ...search.Option) {
	g := benchGrid(b, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(g, mode, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Dijkstra measures Dijkstra on a 128×128 comb.
func BenchmarkRun_Dijkstra(b *testing.B) { benchmarkRun(b, search.Dijkstra) }

// BenchmarkRun_AStar measures A* on the same grid.
func BenchmarkRun_AStar(b *testing.B) { benchmarkRun(b, search.AStar) }

// BenchmarkRun_AStarFirstSeen measures A* with the at-most-once queue.
func BenchmarkRun_AStarFirstSeen(b *testing.B) {
	benchmarkRun(b, search.AStar, search.WithFirstSeenQueue())
}

// BenchmarkRun_DFS measures the depth-first walker.
func BenchmarkRun_DFS(b *testing.B) { benchmarkRun(b, search.DFS) }
