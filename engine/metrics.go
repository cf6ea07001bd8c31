package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchRuns counts searches by mode, outcome and trigger
	searchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathgrid_search_runs_total",
		Help: "Total searches by mode, result and trigger",
	}, []string{"mode", "result", "trigger"}) // result: found|unreachable|error; trigger: run|resolve

	// searchDuration tracks search latency
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathgrid_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
	}, []string{"mode"})

	// searchSettled tracks how many cells a search settled
	searchSettled = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathgrid_search_settled_cells",
		Help:    "Cells settled per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"mode"})

	// generations counts maze and terrain generations
	generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathgrid_generations_total",
		Help: "Total layout generations by kind",
	}, []string{"kind"}) // "maze" or "terrain"

	// bridgedWalls counts walls opened to keep generated mazes solvable
	bridgedWalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathgrid_maze_bridged_walls_total",
		Help: "Walls opened after carving to reconnect endpoints",
	})
)

// Trigger label values.
const (
	triggerRun     = "run"
	triggerResolve = "resolve"
)

// resultLabel maps a search outcome to its metric label.
func resultLabel(found bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case found:
		return "found"
	default:
		return "unreachable"
	}
}
