// Package search runs Dijkstra, A* and depth-first search over a grid.Grid,
// writing visitation and path flags back onto its cells.
//
// Dijkstra and A* share one state machine: a min-priority queue of
// (priority, distance, coordinate) entries with lazy decrease-key. Popped
// entries whose cell is already settled are stale and skipped. Edge cost is
// the edge unit (1 orthogonal, √2 diagonal) times the entered cell's kind
// multiplier; Wall neighbours are marked visited on sight and never queued.
// A* adds the Manhattan distance to the goal, scaled by HeuristicWeight, to
// the ordering priority only.
//
// Notes on guarantees:
//
//   - Dijkstra returns shortest paths for any mix of Blank and Mud cells.
//   - A* with weight 1 is optimal on 4-connected grids without Mud. Manhattan
//     is applied unconditionally, so with Mud cells or diagonal moves A* is not
//     guaranteed optimal. Weights above 1 trade optimality for fewer expansions.
//   - DFS returns a path, not the shortest one.
//   - WithFirstSeenQueue swaps in the at-most-once queue; first-seen distances
//     win, so it is not shortest-path safe either.
//
// Path reconstruction walks back from the goal, stepping each time to the
// settled neighbour with the smallest recorded distance. Ties go to the
// neighbour settled first.
//
// Complexity:
//
//   - Dijkstra/A*: O(N²·d·log(N²·d)) time, O(N²·d) memory for the lazy heap.
//   - DFS:         O(N²·d) time and memory.
//
// Errors:
//
//   - ErrNilGrid:            g is nil.
//   - ErrUnknownMode:        mode outside Dijkstra/AStar/DFS.
//   - ErrBadHeuristicWeight: WithHeuristicWeight given a negative or NaN weight.
//   - ErrBrokenPath:         traceback could not descend towards the start.
//   - grid.ErrOutOfBounds:   WithGoal outside the grid.
package search
