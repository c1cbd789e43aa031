package grid

import "fmt"

// New builds a wall-free rows×cols grid with the given start and finish.
// Returns ErrEmptyGrid if rows or cols is below 1, ErrOutOfBounds if start or
// finish lies outside, and ErrStartIsFinish if they coincide.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, start, finish Coord) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Rows: rows, Cols: cols, Start: start, Finish: finish}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %s in %dx%d grid", ErrOutOfBounds, finish, rows, cols)
	}
	if start == finish {
		return nil, ErrStartIsFinish
	}

	g.cells = make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = Cell{Row: r, Col: c}
		}
	}
	g.cells[g.Index(start)].IsStart = true
	g.cells[g.Index(finish)].IsFinish = true

	return g, nil
}

// NewDefault returns the 20×50 reference grid with start (10,15) and finish (10,35).
func NewDefault() *Grid {
	g, err := New(DefaultRows, DefaultCols,
		Coord{Row: DefaultStartRow, Col: DefaultStartCol},
		Coord{Row: DefaultFinishRow, Col: DefaultFinishCol})
	if err != nil {
		// constants are valid; unreachable
		panic(err)
	}
	return g
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps c to its row-major index: Row*Cols + Col.
// The caller guarantees c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Cell returns a copy of the cell at c. The caller guarantees c is in bounds.
func (g *Grid) Cell(c Coord) Cell {
	return g.cells[g.Index(c)]
}

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)].IsWall
}

// IsProtected reports whether c is the start or the finish cell.
func (g *Grid) IsProtected(c Coord) bool {
	return c == g.Start || c == g.Finish
}

// SetWall sets or clears the wall at c.
// Returns ErrOutOfBounds for foreign coordinates and ErrProtectedCell when
// asked to wall the start or finish.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if wall && g.IsProtected(c) {
		return fmt.Errorf("%w: %s", ErrProtectedCell, c)
	}
	g.cells[g.Index(c)].IsWall = wall
	return nil
}

// ToggleWall flips the wall state at c, subject to the same rules as SetWall.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.SetWall(c, !g.cells[g.Index(c)].IsWall)
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		g.cells[i].IsWall = false
	}
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].IsWall {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Offsets returns the fixed neighbor offsets as (Δrow, Δcol) pairs in the
// order up, down, left, right.
func (g *Grid) Offsets() [4][2]int {
	return offsets
}
