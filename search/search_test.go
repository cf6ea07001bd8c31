package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// build paints an n×n grid from rows where '#' is Wall, '~' is Mud, 'S'/'E'
// are the endpoints and anything else is Blank.
func build(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	var start, end grid.Coord
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'S':
				start = grid.Coord{Row: r, Col: c}
			case 'E':
				end = grid.Coord{Row: r, Col: c}
			}
		}
	}
	g, err := grid.New(len(rows), grid.WithStart(start), grid.WithEnd(end))
	require.NoError(t, err)
	for r, row := range rows {
		for c, ch := range row {
			at := grid.Coord{Row: r, Col: c}
			switch ch {
			case '#':
				require.NoError(t, g.SetKind(at, cell.Wall))
			case '~':
				require.NoError(t, g.SetKind(at, cell.Mud))
			}
		}
	}
	return g
}

// requireContiguous asserts that p starts at g's start, ends at goal, stays
// on traversable cells and moves between adjacent cells only.
func requireContiguous(t *testing.T, g *grid.Grid, p []grid.Coord, goal grid.Coord, diagonals bool) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, g.Start(), p[0])
	require.Equal(t, goal, p[len(p)-1])
	for i, c := range p {
		require.Truef(t, g.Kind(c).Traversable(), "path enters %s %s", g.Kind(c), c)
		if i == 0 {
			continue
		}
		dr, dc := abs(c.Row-p[i-1].Row), abs(c.Col-p[i-1].Col)
		require.LessOrEqualf(t, dr, 1, "jump %s → %s", p[i-1], c)
		require.LessOrEqualf(t, dc, 1, "jump %s → %s", p[i-1], c)
		require.Falsef(t, dr+dc == 0, "repeated cell %s", c)
		if !diagonals {
			require.Equalf(t, 1, dr+dc, "diagonal step %s → %s", p[i-1], c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var optimalModes = []search.Mode{search.Dijkstra, search.AStar}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestRun_Errors covers the sentinel errors of Run.
func TestRun_Errors(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	_, err = search.Run(nil, search.Dijkstra)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Run(g, search.Mode(9))
	assert.ErrorIs(t, err, search.ErrUnknownMode)

	_, err = search.Run(g, search.AStar, search.WithGoal(grid.Coord{Row: 5, Col: 5}))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.Panics(t, func() { search.WithHeuristicWeight(-1)(&search.Options{}) })
	assert.Panics(t, func() { search.WithHeuristicWeight(math.NaN())(&search.Options{}) })
}

// TestParseMode checks name resolution and its error.
func TestParseMode(t *testing.T) {
	cases := map[string]search.Mode{
		"dijkstra": search.Dijkstra,
		"AStar":    search.AStar,
		"a*":       search.AStar,
		" dfs ":    search.DFS,
	}
	for in, want := range cases {
		got, err := search.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseMode("bfs")
	assert.True(t, errors.Is(err, search.ErrUnknownMode))
	assert.Equal(t, "mode(7)", search.Mode(7).String())
}

//----------------------------------------------------------------------------//
// Optimal modes
//----------------------------------------------------------------------------//

// TestRun_OpenGrid searches a wall-free 5×5 grid corner to corner.
func TestRun_OpenGrid(t *testing.T) {
	for _, mode := range optimalModes {
		t.Run(mode.String(), func(t *testing.T) {
			g, err := grid.New(5,
				grid.WithStart(grid.Coord{Row: 0, Col: 0}),
				grid.WithEnd(grid.Coord{Row: 4, Col: 4}))
			require.NoError(t, err)

			res, err := search.Run(g, mode)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 8.0, res.Distance)
			assert.Len(t, res.Path, 9)
			assert.LessOrEqual(t, res.Settled(), 25)
			requireContiguous(t, g, res.Path, g.End(), false)

			seen := make(map[grid.Coord]bool, len(res.Order))
			for _, c := range res.Order {
				require.Falsef(t, seen[c], "%s settled twice", c)
				seen[c] = true
			}
			assert.Equal(t, g.Start(), res.Order[0])
			assert.Equal(t, g.End(), res.Order[len(res.Order)-1])
		})
	}
}

// TestRun_CenterWall routes around the single wall of a 3×3 grid.
func TestRun_CenterWall(t *testing.T) {
	for _, mode := range optimalModes {
		t.Run(mode.String(), func(t *testing.T) {
			g := build(t,
				"S..",
				".#.",
				"..E",
			)
			res, err := search.Run(g, mode)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 4.0, res.Distance)
			assert.NotContains(t, res.Path, grid.Coord{Row: 1, Col: 1})
			requireContiguous(t, g, res.Path, g.End(), false)
		})
	}
}

// TestRun_Unreachable walls the goal in; every mode reports false.
func TestRun_Unreachable(t *testing.T) {
	for _, mode := range []search.Mode{search.Dijkstra, search.AStar, search.DFS} {
		t.Run(mode.String(), func(t *testing.T) {
			g := build(t,
				"S....",
				"..#..",
				".#E#.",
				"..#..",
				".....",
			)
			res, err := search.Run(g, mode)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.True(t, math.IsInf(res.Distance, 1))
			assert.Nil(t, res.Path)
			assert.NotContains(t, res.Order, g.End())
			assert.False(t, g.OnPath(g.End()))

			for _, c := range []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}} {
				st, err := g.State(c)
				require.NoError(t, err)
				assert.False(t, st.Visited, "wall %s flagged", c)
			}
		})
	}
}

// TestRun_Mud prefers a longer detour over a cheap-looking muddy row.
//
//	S ~ ~ ~ E
//	. . . . .
//
// Through the mud: 3+3+3+1 = 10. Around it: 6.
func TestRun_Mud(t *testing.T) {
	g := build(t,
		"S~~~E",
		".....",
		".....",
		".....",
		".....",
	)
	res, err := search.Run(g, search.Dijkstra)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 6.0, res.Distance)
	for _, c := range res.Path {
		assert.NotEqual(t, cell.Mud, g.Kind(c), "path crosses mud at %s", c)
	}
	requireContiguous(t, g, res.Path, g.End(), false)
}

// TestRun_Diagonals walks the main diagonal at √2 per step.
func TestRun_Diagonals(t *testing.T) {
	g, err := grid.New(5,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithEnd(grid.Coord{Row: 4, Col: 4}))
	require.NoError(t, err)

	res, err := search.Run(g, search.Dijkstra, search.WithDiagonals(true))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.InDelta(t, 4*math.Sqrt2, res.Distance, 1e-9)
	assert.Equal(t, []grid.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4},
	}, res.Path)
}

// TestRun_DijkstraMatchesAStar compares distances on 4-connected grids
// without mud, where the Manhattan bound is exact enough for optimality.
func TestRun_DijkstraMatchesAStar(t *testing.T) {
	layouts := [][]string{
		{
			"S......",
			".#####.",
			".....#.",
			"####.#.",
			"...#.#.",
			".#...#.",
			".#####E",
		},
		{
			"S.#....",
			"..#.##.",
			"..#..#.",
			"..##.#.",
			".....#.",
			"####.#.",
			"E......",
		},
	}
	for i, rows := range layouts {
		dg := build(t, rows...)
		ag := build(t, rows...)
		dres, err := search.Run(dg, search.Dijkstra)
		require.NoError(t, err)
		ares, err := search.Run(ag, search.AStar)
		require.NoError(t, err)

		require.Truef(t, dres.Found, "layout %d", i)
		require.Truef(t, ares.Found, "layout %d", i)
		assert.Equalf(t, dres.Distance, ares.Distance, "layout %d", i)
		assert.LessOrEqualf(t, ares.Settled(), dres.Settled(), "layout %d", i)
	}
}

// TestRun_PathDistances checks that recorded distances strictly grow along
// the path and that every path cell is flagged.
func TestRun_PathDistances(t *testing.T) {
	g := build(t,
		"S.~..",
		".#~#.",
		".#...",
		".~~#.",
		"...#E",
	)
	res, err := search.Run(g, search.Dijkstra)
	require.NoError(t, err)
	require.True(t, res.Found)

	for i := 1; i < len(res.Path); i++ {
		assert.Less(t, res.Distances[res.Path[i-1]], res.Distances[res.Path[i]])
	}
	assert.Equal(t, res.Distance, res.Distances[g.End()])
	for _, c := range res.Path {
		st, err := g.State(c)
		require.NoError(t, err)
		assert.True(t, st.OnPath, "%s not flagged", c)
		assert.True(t, st.Visited, "%s not visited", c)
	}
}

// TestRun_FirstSeenQueue keeps optimal distances on a uniform-cost grid.
func TestRun_FirstSeenQueue(t *testing.T) {
	g, err := grid.New(6)
	require.NoError(t, err)
	res, err := search.Run(g, search.Dijkstra, search.WithFirstSeenQueue())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 6.0, res.Distance)
	requireContiguous(t, g, res.Path, g.End(), false)
}

// TestRun_HeuristicWeightZero degrades A* to Dijkstra.
func TestRun_HeuristicWeightZero(t *testing.T) {
	g, err := grid.New(8)
	require.NoError(t, err)
	res, err := search.Run(g, search.AStar, search.WithHeuristicWeight(0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 10.0, res.Distance)
}

//----------------------------------------------------------------------------//
// Shared behaviour
//----------------------------------------------------------------------------//

// TestRun_OnSettle counts callbacks: one per settled cell except the start.
func TestRun_OnSettle(t *testing.T) {
	for _, mode := range []search.Mode{search.Dijkstra, search.AStar, search.DFS} {
		t.Run(mode.String(), func(t *testing.T) {
			g, err := grid.New(6)
			require.NoError(t, err)
			var calls []grid.Coord
			res, err := search.Run(g, mode, search.WithOnSettle(func(c grid.Coord) {
				calls = append(calls, c)
			}))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, res.Order[1:], calls)
			assert.NotContains(t, calls, g.Start())
		})
	}
}

// TestRun_SameStartAndGoal returns the trivial path.
func TestRun_SameStartAndGoal(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	res, err := search.Run(g, search.AStar, search.WithGoal(g.Start()))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []grid.Coord{g.Start()}, res.Path)
}

// TestRun_ClearsPreviousRun checks that flags from an earlier run vanish.
func TestRun_ClearsPreviousRun(t *testing.T) {
	g, err := grid.New(6)
	require.NoError(t, err)
	first, err := search.Run(g, search.Dijkstra)
	require.NoError(t, err)
	require.True(t, first.Found)

	// Box the end in; nothing may keep its old OnPath flag.
	end := g.End()
	for _, nb := range g.Neighbors(end, false) {
		require.NoError(t, g.SetKind(nb.Coord, cell.Wall))
	}
	second, err := search.Run(g, search.Dijkstra)
	require.NoError(t, err)
	assert.False(t, second.Found)
	for _, c := range first.Path {
		assert.False(t, g.OnPath(c), "%s kept OnPath", c)
	}
}

//----------------------------------------------------------------------------//
// DFS
//----------------------------------------------------------------------------//

// TestRun_DFS finds some valid path and prices it by its cells.
func TestRun_DFS(t *testing.T) {
	g := build(t,
		"S..#.",
		".#.#.",
		".#~..",
		".##.#",
		"....E",
	)
	res, err := search.Run(g, search.DFS)
	require.NoError(t, err)
	require.True(t, res.Found)
	requireContiguous(t, g, res.Path, g.End(), false)

	total := 0.0
	for _, c := range res.Path[1:] {
		total += g.Cost(c)
	}
	assert.Equal(t, total, res.Distance)
	assert.Equal(t, total, res.Distances[g.End()])
	for _, c := range res.Path {
		assert.True(t, g.OnPath(c))
	}
}

// TestRun_DFSDiagonals allows diagonal moves and prices them at √2.
func TestRun_DFSDiagonals(t *testing.T) {
	g, err := grid.New(6)
	require.NoError(t, err)
	res, err := search.Run(g, search.DFS, search.WithDiagonals(true))
	require.NoError(t, err)
	require.True(t, res.Found)
	requireContiguous(t, g, res.Path, g.End(), true)
	assert.GreaterOrEqual(t, res.Distance, 3*math.Sqrt2-1e-9)
}
