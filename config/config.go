package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathgrid/search"
)

// Environment variable names.
const (
	EnvSize            = "PATHGRID_SIZE"
	EnvDiagonals       = "PATHGRID_DIAGONALS"
	EnvMode            = "PATHGRID_MODE"
	EnvHeuristicWeight = "PATHGRID_HEURISTIC_WEIGHT"
	EnvSeed            = "PATHGRID_SEED"
	EnvLogLevel        = "PATHGRID_LOG_LEVEL"
)

// DefaultSize is the grid dimension used when PATHGRID_SIZE is unset.
const DefaultSize = 120

// ErrInvalid indicates a malformed or out-of-range setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the engine's recognized options.
type Config struct {
	Size            int          // grid dimension N
	Diagonals       bool         // 8-connected movement
	Mode            search.Mode  // algorithm used by runs and re-solves
	HeuristicWeight float64      // A* heuristic scale
	Seed            int64        // maze/terrain seed; 0 is time-based
	LogLevel        logrus.Level // engine log level
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:            DefaultSize,
		Diagonals:       false,
		Mode:            search.Dijkstra,
		HeuristicWeight: 1,
		Seed:            0,
		LogLevel:        logrus.InfoLevel,
	}
}

// Load builds a Config from Default, the given .env files (".env" when none
// are named; missing files are skipped) and the PATHGRID_* variables.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if v, ok := os.LookupEnv(EnvSize); ok {
		if cfg.Size, err = strconv.Atoi(v); err != nil {
			return Config{}, invalid(EnvSize, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvDiagonals); ok {
		if cfg.Diagonals, err = strconv.ParseBool(v); err != nil {
			return Config{}, invalid(EnvDiagonals, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvMode); ok {
		if cfg.Mode, err = search.ParseMode(v); err != nil {
			return Config{}, invalid(EnvMode, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvHeuristicWeight); ok {
		if cfg.HeuristicWeight, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, invalid(EnvHeuristicWeight, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, invalid(EnvSeed, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, invalid(EnvLogLevel, v, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges: Size ≥ 2, a known Mode and a non-negative,
// finite HeuristicWeight.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d (minimum 2)", ErrInvalid, c.Size)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: mode %s", ErrInvalid, c.Mode)
	}
	if c.HeuristicWeight < 0 || math.IsNaN(c.HeuristicWeight) || math.IsInf(c.HeuristicWeight, 0) {
		return fmt.Errorf("%w: heuristic weight %v", ErrInvalid, c.HeuristicWeight)
	}
	return nil
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
}
