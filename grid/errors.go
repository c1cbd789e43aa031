package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrStartIsFinish indicates start and finish share a cell.
	ErrStartIsFinish = errors.New("grid: start and finish must be distinct cells")
	// ErrProtectedCell indicates an attempt to wall the start or finish cell.
	ErrProtectedCell = errors.New("grid: start and finish cannot be walls")
	// ErrBadSymbol indicates an unknown character in a text board.
	ErrBadSymbol = errors.New("grid: unknown board symbol")
	// ErrMissingStart indicates a text board without an 'S'.
	ErrMissingStart = errors.New("grid: board has no start cell")
	// ErrMissingFinish indicates a text board without an 'F'.
	ErrMissingFinish = errors.New("grid: board has no finish cell")
	// ErrDuplicateRole indicates more than one 'S' or 'F'.
	ErrDuplicateRole = errors.New("grid: board has more than one start or finish")
)
