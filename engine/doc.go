// Package engine is the surface a renderer or input layer drives: it owns one
// grid.Grid and exposes per-cell queries, edits, searches and generators.
//
// Incremental re-solve:
//
// After any run, moving the start or end clears the run flags and runs the
// same mode again before the call returns, even when that run found nothing.
// After a run that found a path, editing a cell on that path re-solves the
// same way; edits off the path leave the last result alone. Re-solves never
// call the settle callback. Clearing, resetting and generating a maze or
// terrain forget the run, so nothing re-solves until the next RunSearch.
//
// The engine is single-threaded; callers serialize access.
//
// Runs, re-solves and generations are logged through logrus (silent unless
// WithLogger is given) and counted in Prometheus collectors registered on the
// default registry.
package engine
