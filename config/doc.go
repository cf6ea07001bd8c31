// Package config loads engine settings from the environment.
//
// Load reads an optional .env file with godotenv, then overrides the defaults
// with any PATHGRID_* variables that are set:
//
//	PATHGRID_SIZE              grid dimension N (default 120)
//	PATHGRID_DIAGONALS         allow diagonal moves (default false)
//	PATHGRID_MODE              dijkstra | astar | dfs (default dijkstra)
//	PATHGRID_HEURISTIC_WEIGHT  A* heuristic scale (default 1)
//	PATHGRID_SEED              generator seed, 0 for time-based (default 0)
//	PATHGRID_LOG_LEVEL         logrus level name (default info)
//
// Variables already present in the process environment win over the .env file.
package config
