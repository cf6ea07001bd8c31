package grid

// Components finds every contiguous region of traversable cells under conn.
// Each region is a slice of coordinates in BFS discovery order; regions are
// ordered by their first cell in row-major order.
//
// Time:   O(N²·d), where d = 4 or 8.
// Memory: O(N²) for seen flags and output.
func (g *Grid) Components(conn Connectivity) [][]Coord {
	seen := make([]bool, g.n*g.n)
	var comps [][]Coord

	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			at := Coord{r, c}
			if !g.Kind(at).Traversable() || seen[g.index(at)] {
				continue
			}
			comps = append(comps, g.region(at, conn, seen))
		}
	}
	return comps
}

// Region returns the traversable region containing c under conn, or nil when
// c is out of bounds or impassable.
func (g *Grid) Region(c Coord, conn Connectivity) []Coord {
	if !g.InBounds(c) || !g.Kind(c).Traversable() {
		return nil
	}
	return g.region(c, conn, make([]bool, g.n*g.n))
}

// Connected reports whether a and b lie in the same traversable region.
func (g *Grid) Connected(a, b Coord, conn Connectivity) bool {
	for _, c := range g.Region(a, conn) {
		if c == b {
			return true
		}
	}
	return false
}

// region runs a BFS from origin, marking cells in seen.
func (g *Grid) region(origin Coord, conn Connectivity, seen []bool) []Coord {
	offs := offsets(conn)
	queue := []int{g.index(origin)}
	seen[queue[0]] = true
	var comp []Coord

	for qi := 0; qi < len(queue); qi++ {
		u := g.coordinate(queue[qi])
		comp = append(comp, u)
		for _, d := range offs {
			v := Coord{u.Row + d[0], u.Col + d[1]}
			if !g.InBounds(v) || !g.Kind(v).Traversable() {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return comp
}
