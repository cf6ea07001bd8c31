// Package pathgrid is a grid pathfinding and maze engine: an N×N board of
// typed cells, three search algorithms that paint their progress back onto the
// board, maze and terrain generators, and an engine that re-solves after edits.
//
// Layout:
//
//	cell/      cell kinds, cost multipliers, display roles and render snapshots
//	grid/      the board: neighbours, edits, endpoint moves, regions, wall bridging
//	pq/        a lazy min-heap and an at-most-once keyed variant
//	search/    Dijkstra, A* (Manhattan) and depth-first search
//	maze/      randomized Prim carving and Mud terrain patches
//	engine/    the consumer API and the incremental re-solve policy
//	config/    PATHGRID_* settings loaded from the environment or a .env file
//	examples/  a runnable maze navigation scenario
//
// Quick start:
//
//	e, _ := engine.New(engine.WithSize(31), engine.WithSeed(7))
//	_ = e.GenerateMaze()
//	found, _ := e.RunSearch(search.AStar)
//	st, _ := e.CellState(grid.Coord{Row: 3, Col: 4}) // {Kind, Visited, OnPath}
//
// Costs:
//
//	Blank, Start, End  ×1
//	Mud                ×3
//	Wall               impassable
//
// Orthogonal steps cost 1 times the entered cell's multiplier; diagonal steps,
// when enabled, cost √2 times it.
package pathgrid
