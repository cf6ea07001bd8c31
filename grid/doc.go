// Package grid owns the square cell array a pathfinder searches: the cell
// kinds, the unique start and end coordinates, and neighbour enumeration in
// 4- or 8-connected mode.
//
// What:
//
//   - Grid wraps an N×N array of cell.Cell with exactly one Start and one End.
//   - Neighbors enumerates orthogonal (unit 1) and diagonal (unit √2) edges,
//     clamping coordinates to [0, N-1] and dropping the source itself.
//   - SetKind, MoveStart and MoveEnd are the consumer mutation surface; they
//     never let an obstacle overwrite an endpoint.
//   - ClearForNewRun wipes visitation and path flags before each search.
//   - Components and Bridge analyse traversable regions for maze repair.
//
// Complexity:
//
//   - New, ClearForNewRun, Reset, Fill: O(N²)
//   - Neighbors, SetKind, MoveStart/MoveEnd: O(1)
//   - Components, Bridge: O(N²·d), Memory: O(N²)   (d = 4 or 8)
//
// Errors:
//
//   - ErrBadSize:        N < 2.
//   - ErrOutOfBounds:    coordinate outside [0, N-1]².
//   - ErrSameEndpoints:  start and end requested on the same cell.
//   - ErrNoPath:         Bridge found no route.
//   - cell.ErrInvalidKind from SetKind for kinds outside {Blank, Wall, Mud}.
//
// A Grid is not safe for concurrent mutation; the owning engine drives it from
// a single goroutine.
package grid
