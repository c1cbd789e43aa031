package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOutOfBounds is returned when start or finish lies outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrUnknownGenerator is returned for unrecognized generator names.
	ErrUnknownGenerator = errors.New("maze: unknown generator")
)

// Defaults for the tunable parameters.
const (
	DefaultWallProbability = 0.25
	DefaultPeriod          = 4
	DefaultProximity       = 2
)

// Option configures a generator via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	// Seed feeds the default RNG; 0 selects the fixed default seed.
	Seed int64

	// Rand, if set, is used instead of a seeded RNG. Not goroutine-safe.
	Rand *rand.Rand

	// WallProbability is the chance that Random walls a cell, in [0,1].
	WallProbability float64

	// Period is the column/row spacing used by Pattern, ≥ 1.
	Period int

	// Proximity is the square radius Pattern keeps open around start and finish, ≥ 0.
	Proximity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference parameters: probability 0.25,
// period 4, proximity 2 and the default seed.
func DefaultOptions() Options {
	return Options{
		WallProbability: DefaultWallProbability,
		Period:          DefaultPeriod,
		Proximity:       DefaultProximity,
	}
}

// WithSeed selects a deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand uses rng directly; nil keeps the seeded default.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithWallProbability sets Random's wall probability; p must lie in [0,1].
func WithWallProbability(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: wall probability must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.WallProbability = p
	}
}

// WithPeriod sets Pattern's spacing; n must be at least 1.
func WithPeriod(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: period must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Period = n
	}
}

// WithProximity sets Pattern's keep-clear radius; r must be non-negative.
func WithProximity(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: proximity cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Proximity = r
	}
}
