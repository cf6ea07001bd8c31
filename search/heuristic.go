package search

import "github.com/katalvlaran/pathgrid/grid"

// Manhattan returns |Δrow| + |Δcol| between a and b.
// It is admissible only for 4-connected movement over unit-cost cells.
func Manhattan(a, b grid.Coord) float64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}
