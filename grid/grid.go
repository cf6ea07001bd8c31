package grid

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/cell"
)

// Grid is a square N×N array of cells with one Start and one End.
type Grid struct {
	n     int
	cells [][]cell.Cell // cells[row][col]
	start Coord
	end   Coord
}

// New builds an n×n grid of Blank cells with the endpoints placed per opts.
// Returns ErrBadSize if n < 2, ErrOutOfBounds if an endpoint lies outside the
// grid, and ErrSameEndpoints if both endpoints share a cell.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	start, end := DefaultEndpoints(n)
	if o.Start != nil {
		start = *o.Start
	}
	if o.End != nil {
		end = *o.End
	}

	g := &Grid{n: n, start: start, end: end}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}

	g.cells = make([][]cell.Cell, n)
	for r := 0; r < n; r++ {
		g.cells[r] = make([]cell.Cell, n)
	}
	g.cells[start.Row][start.Col].Kind = cell.Start
	g.cells[end.Row][end.Col].Kind = cell.End

	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.n }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies within [0, N-1]².
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// Kind returns the kind at c. Out-of-range coordinates read as Wall.
func (g *Grid) Kind(c Coord) cell.Kind {
	if !g.InBounds(c) {
		return cell.Wall
	}
	return g.cells[c.Row][c.Col].Kind
}

// Cost returns the cost multiplier for entering c.
func (g *Grid) Cost(c Coord) float64 { return g.Kind(c).Cost() }

// State returns the render snapshot of c.
func (g *Grid) State(c Coord) (cell.State, error) {
	if !g.InBounds(c) {
		return cell.State{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.cells[c.Row][c.Col].State(), nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, st cell.State)) {
	for r := 0; r < g.n; r++ {
		for col := 0; col < g.n; col++ {
			fn(Coord{r, col}, g.cells[r][col].State())
		}
	}
}

// Neighbors lists the cells adjacent to c, orthogonal first, then diagonal
// when diagonals is true. Each coordinate is clamped to [0, N-1]; an entry
// that collapses onto c is dropped. Clamping at a border can fold a diagonal
// onto an orthogonal neighbour; that entry keeps its Diagonal label.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord, diagonals bool) []Neighbor {
	out := make([]Neighbor, 0, 8)
	for _, d := range orthogonalOffsets {
		if nb := g.clamp(c.Row+d[0], c.Col+d[1]); nb != c {
			out = append(out, Neighbor{Coord: nb, Edge: Orthogonal})
		}
	}
	if !diagonals {
		return out
	}
	for _, d := range diagonalOffsets {
		if nb := g.clamp(c.Row+d[0], c.Col+d[1]); nb != c {
			out = append(out, Neighbor{Coord: nb, Edge: Diagonal})
		}
	}
	return out
}

// clamp pins (r, c) into the grid.
func (g *Grid) clamp(r, c int) Coord {
	return Coord{Row: min(max(r, 0), g.n-1), Col: min(max(c, 0), g.n-1)}
}

// SetKind paints kind k onto c. Only Blank, Wall and Mud are accepted.
// Painting onto the start or end cell is silently ignored.
func (g *Grid) SetKind(c Coord, k cell.Kind) error {
	if err := cell.ValidateEditable(k); err != nil {
		return err
	}
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if c == g.start || c == g.end {
		return nil
	}
	g.cells[c.Row][c.Col].Kind = k
	return nil
}

// MoveStart relocates the start onto c. It succeeds only when c is Blank;
// on failure nothing changes.
func (g *Grid) MoveStart(c Coord) bool {
	if g.Kind(c) != cell.Blank {
		return false
	}
	g.cells[g.start.Row][g.start.Col].Kind = cell.Blank
	g.cells[c.Row][c.Col].Kind = cell.Start
	g.start = c
	return true
}

// MoveEnd relocates the end onto c. It succeeds only when c is Blank;
// on failure nothing changes.
func (g *Grid) MoveEnd(c Coord) bool {
	if g.Kind(c) != cell.Blank {
		return false
	}
	g.cells[g.end.Row][g.end.Col].Kind = cell.Blank
	g.cells[c.Row][c.Col].Kind = cell.End
	g.end = c
	return true
}

// ClearForNewRun resets every cell's Visited and OnPath flags. Kinds other
// than Start, End, Wall and Mud return to Blank. Calling it twice is the same
// as calling it once.
// Complexity: O(N²).
func (g *Grid) ClearForNewRun() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].Reset()
		}
	}
}

// Reset returns every non-endpoint cell to Blank and clears all flags.
func (g *Grid) Reset() { g.Fill(cell.Blank) }

// Fill sets every non-endpoint cell to k and clears all flags.
// Kinds outside the editable set are ignored.
func (g *Grid) Fill(k cell.Kind) {
	if cell.ValidateEditable(k) != nil {
		return
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			p := &g.cells[r][c]
			p.Visited, p.OnPath = false, false
			if !p.Kind.Endpoint() {
				p.Kind = k
			}
		}
	}
}

// MarkVisited flags c as settled by the current search.
func (g *Grid) MarkVisited(c Coord) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col].Visited = true
	}
}

// MarkOnPath flags c as part of the current search's path.
func (g *Grid) MarkOnPath(c Coord) {
	if g.InBounds(c) {
		g.cells[c.Row][c.Col].OnPath = true
	}
}

// OnPath reports whether c carries the path flag of the last search.
func (g *Grid) OnPath(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col].OnPath
}

// index maps c to a row-major index.
func (g *Grid) index(c Coord) int { return c.Row*g.n + c.Col }

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord { return Coord{Row: idx / g.n, Col: idx % g.n} }

// offsets returns the in-bounds neighbour offsets for conn.
func offsets(conn Connectivity) [][2]int {
	out := make([][2]int, 0, 8)
	out = append(out, orthogonalOffsets[:]...)
	if conn == Conn8 {
		out = append(out, diagonalOffsets[:]...)
	}
	return out
}
