package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for maze and terrain generation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a generator.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrBadPatches indicates a negative patch count.
	ErrBadPatches = errors.New("maze: patch count must be non-negative")

	// ErrBadDecay indicates an inclusion probability outside (0,1] or a
	// non-positive decay step.
	ErrBadDecay = errors.New("maze: decay needs initial in (0,1] and step > 0")
)

// Default terrain flood parameters.
const (
	DefaultInitial = 0.9
	DefaultStep    = 0.15
)

// Options configures Generate and Terrain.
type Options struct {
	SeedCell *grid.Coord // where carving starts; nil means the grid's Start
	Rand     *rand.Rand  // random source; nil means a fresh one seeded from Seed
	Seed     int64       // seed for a fresh source; 0 means time-based
	Patches  int         // terrain patch count; 0 picks one from the grid size
	Initial  float64     // terrain inclusion probability of the first ring
	Step     float64     // terrain probability decrease per ring
}

// Option represents a functional option for the generators.
type Option func(*Options)

// DefaultOptions returns a time-seeded source, carving from Start, and the
// default terrain decay.
func DefaultOptions() Options {
	return Options{
		Initial: DefaultInitial,
		Step:    DefaultStep,
	}
}

// WithSeedCell starts carving at c instead of the grid's Start.
func WithSeedCell(c grid.Coord) Option {
	return func(o *Options) {
		o.SeedCell = &c
	}
}

// WithRand draws all randomness from r. It replaces an earlier WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a fresh source with seed. Zero keeps the time-based default.
// It replaces an earlier WithRand.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = nil
		o.Seed = seed
	}
}

// WithPatches fixes the number of terrain patches. It panics if n < 0.
func WithPatches(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadPatches.Error())
		}
		o.Patches = n
	}
}

// WithDecay sets the first-ring inclusion probability and its per-ring
// decrease. It panics unless 0 < initial ≤ 1 and step > 0.
func WithDecay(initial, step float64) Option {
	return func(o *Options) {
		if !(initial > 0 && initial <= 1) || !(step > 0) {
			panic(ErrBadDecay.Error())
		}
		o.Initial, o.Step = initial, step
	}
}

// source resolves the random source described by o.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Stats summarizes one generator call.
type Stats struct {
	Carved  int // cells opened by Prim's carving, seed included
	Bridged int // walls opened afterwards to reconnect endpoints
	Patches int // terrain patches dropped
	Mud     int // cells converted to Mud
}
