package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/cell"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
)

// snapshot records every cell kind of g in row-major order.
func snapshot(g *grid.Grid) []cell.Kind {
	out := make([]cell.Kind, 0, g.Size()*g.Size())
	g.Each(func(_ grid.Coord, st cell.State) {
		out = append(out, st.Kind)
	})
	return out
}

// TestGenerate_Errors covers argument validation.
func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(nil)
	assert.ErrorIs(t, err, maze.ErrNilGrid)

	g, err := grid.New(6)
	require.NoError(t, err)
	_, err = maze.Generate(g, maze.WithSeedCell(grid.Coord{Row: 6, Col: 0}))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestGenerate_SingleRegion checks that one traversable region holds both
// endpoints and that every other cell is Wall or Blank.
func TestGenerate_SingleRegion(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234, 99991} {
		g, err := grid.New(15)
		require.NoError(t, err)
		start, end := g.Start(), g.End()

		stats, err := maze.Generate(g, maze.WithSeed(seed))
		require.NoError(t, err)

		assert.Equal(t, start, g.Start())
		assert.Equal(t, end, g.End())
		assert.Equal(t, cell.Start, g.Kind(start))
		assert.Equal(t, cell.End, g.Kind(end))

		comps := g.Components(grid.Conn4)
		require.Lenf(t, comps, 1, "seed %d", seed)
		assert.Contains(t, comps[0], start)
		assert.Contains(t, comps[0], end)

		walls := 0
		g.Each(func(c grid.Coord, st cell.State) {
			switch st.Kind {
			case cell.Wall:
				walls++
			case cell.Blank, cell.Start, cell.End:
			default:
				t.Errorf("seed %d: unexpected %s at %s", seed, st.Kind, c)
			}
		})
		assert.Positive(t, walls)
		assert.Positive(t, stats.Carved)
		assert.Equal(t, len(comps[0]), g.Size()*g.Size()-walls)
	}
}

// TestGenerate_SeedCell carves from a corner instead of Start.
func TestGenerate_SeedCell(t *testing.T) {
	g, err := grid.New(9)
	require.NoError(t, err)
	corner := grid.Coord{Row: 8, Col: 0}

	_, err = maze.Generate(g, maze.WithSeed(5), maze.WithSeedCell(corner))
	require.NoError(t, err)

	assert.Equal(t, cell.Blank, g.Kind(corner))
	assert.True(t, g.Connected(corner, g.Start(), grid.Conn4))
	assert.True(t, g.Connected(corner, g.End(), grid.Conn4))
}

// TestGenerate_Deterministic replays the same seed on two grids.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := grid.New(12)
	require.NoError(t, err)
	b, err := grid.New(12)
	require.NoError(t, err)

	_, err = maze.Generate(a, maze.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	_, err = maze.Generate(b, maze.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, snapshot(a), snapshot(b))
}

// TestGenerate_ClearsLayout overwrites earlier Mud and run flags.
func TestGenerate_ClearsLayout(t *testing.T) {
	g, err := grid.New(8)
	require.NoError(t, err)
	g.Fill(cell.Mud)
	g.MarkOnPath(grid.Coord{Row: 3, Col: 3})

	_, err = maze.Generate(g, maze.WithSeed(11))
	require.NoError(t, err)

	g.Each(func(c grid.Coord, st cell.State) {
		assert.NotEqual(t, cell.Mud, st.Kind, "mud left at %s", c)
		if !st.Kind.Endpoint() {
			assert.False(t, st.OnPath, "stale flag at %s", c)
		}
	})
}

// TestGenerate_TinyGrid runs on the smallest legal grid.
func TestGenerate_TinyGrid(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	_, err = maze.Generate(g, maze.WithSeed(2))
	require.NoError(t, err)
	assert.True(t, g.Connected(g.Start(), g.End(), grid.Conn4))
}

// TestGenerate_LaterOptionWins lets a seed given after a source take over.
func TestGenerate_LaterOptionWins(t *testing.T) {
	a, err := grid.New(10)
	require.NoError(t, err)
	b, err := grid.New(10)
	require.NoError(t, err)

	_, err = maze.Generate(a, maze.WithRand(rand.New(rand.NewSource(123))), maze.WithSeed(9))
	require.NoError(t, err)
	_, err = maze.Generate(b, maze.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, snapshot(a), snapshot(b))
}
