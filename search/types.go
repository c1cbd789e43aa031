package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or finish lies outside the grid.
	ErrOutOfBounds = errors.New("search: coordinate out of bounds")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for foreign names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the hooks an external presentation layer may install.
type Options struct {
	// OnVisit is called each time a cell is finalized, with its position in
	// the visit order (0-based).
	OnVisit func(c grid.Coord, step int)

	// OnEnqueue is called each time a cell is pushed onto the frontier.
	OnEnqueue func(c grid.Coord)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(grid.Coord, int) {},
		OnEnqueue: func(grid.Coord) {},
	}
}

// WithOnVisit registers a callback run when a cell is finalized.
func WithOnVisit(fn func(c grid.Coord, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a cell enters the frontier.
func WithOnEnqueue(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result is the outcome of one search run.
//   - Order: cells in the exact order they were finalized.
//   - State: the per-cell working state left by the run.
type Result struct {
	Algorithm Algorithm
	Start     grid.Coord
	Finish    grid.Coord
	Order     []grid.Coord
	State     *State
}

// Found reports whether the finish cell was finalized.
func (r *Result) Found() bool {
	n := len(r.Order)
	return n > 0 && r.Order[n-1] == r.Finish
}

// Path reconstructs the start→finish path from the predecessor links.
// When the finish was not reached the result is [finish] alone; use Found
// to tell that apart from a start==finish run.
func (r *Result) Path() []grid.Coord {
	return ReconstructPath(r.State, r.Finish)
}

// PathLength returns the number of steps (edges) on the found path,
// or 0 when the finish was not reached.
func (r *Result) PathLength() int {
	if !r.Found() {
		return 0
	}
	return len(r.Path()) - 1
}

// Visited returns how many cells were finalized.
func (r *Result) Visited() int { return len(r.Order) }
