// Package maze carves mazes and scatters Mud terrain onto a grid.Grid.
//
// Generate runs randomized Prim's algorithm on cells rather than edges:
//
//  1. Fill every non-endpoint cell with Wall and open the seed cell
//     (the grid's Start unless WithSeedCell says otherwise).
//  2. Keep a frontier of closed cells that touch the open region.
//  3. Pick a frontier cell uniformly at random. If at most one of its
//     4-neighbours is open, open it and add its closed neighbours to the
//     frontier. Drop it from the frontier either way.
//  4. Stop when the frontier is empty.
//
// The "at most one open neighbour" test avoids most cycles but counts any open
// cell, not only cells reached from the picked one, so the result is not a
// strict perfect maze. Start and End keep their kinds throughout; a carved
// endpoint simply stays Start or End. If carving leaves either endpoint cut
// off from the seed's region, Generate opens the fewest walls that join them
// (grid.Bridge), so a generated maze is always solvable.
//
// Terrain drops random Mud patches. Each patch floods outward from a random
// center in rings; a neighbour joins the next ring with a probability that
// starts at 0.9 and drops by 0.15 per ring. Only Blank cells turn to Mud.
//
// Both generators draw from a *rand.Rand. WithSeed or WithRand make the output
// reproducible; the default seed is time-based.
//
// Complexity:
//
//   - Generate: O(N²) time and memory.
//   - Terrain:  O(P·R²) for P patches of at most R rings.
package maze
