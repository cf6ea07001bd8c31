// Package cell defines the per-coordinate state of a pathfinding grid:
// the node kind, its traversal cost multiplier, and the visitation flags a
// search writes back for a renderer to poll.
//
// What:
//
//   - Kind is a tagged enumeration: Blank, Start, End, Wall, Mud.
//   - Every Kind resolves its name, cost multiplier and display Role through
//     fixed lookup tables; nothing is dispatched on strings at access time.
//   - Cell carries the Kind plus the Visited and OnPath flags of the most recent run.
//
// Costs:
//
//   - Blank, Start, End: 1
//   - Mud:               3
//   - Wall:              +Inf (never traversable)
//
// Errors:
//
//   - ErrInvalidKind: unknown kind name or value; the message lists the allowed set.
package cell
