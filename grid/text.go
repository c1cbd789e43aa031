package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from text rows using the '.', '#', 'S', 'F' alphabet.
// Exactly one 'S' and one 'F' are required.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	var (
		start, finish         Coord
		haveStart, haveFinish bool
		walls                 []Coord
	)
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			at := Coord{Row: r, Col: c}
			switch line[c] {
			case SymbolOpen:
			case SymbolWall:
				walls = append(walls, at)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at %s", ErrDuplicateRole, at)
				}
				start, haveStart = at, true
			case SymbolFinish:
				if haveFinish {
					return nil, fmt.Errorf("%w: second 'F' at %s", ErrDuplicateRole, at)
				}
				finish, haveFinish = at, true
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadSymbol, line[c], at)
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveFinish {
		return nil, ErrMissingFinish
	}

	g, err := New(rows, cols, start, finish)
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.cells[g.Index(w)].IsWall = true
	}
	return g, nil
}

// Lines renders g as text rows, the inverse of Parse.
func (g *Grid) Lines() []string {
	out := make([]string, g.Rows)
	buf := make([]byte, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			buf[c] = g.symbol(g.cells[r*g.Cols+c])
		}
		out[r] = string(buf)
	}
	return out
}

// String renders g as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g *Grid) symbol(c Cell) byte {
	switch {
	case c.IsStart:
		return SymbolStart
	case c.IsFinish:
		return SymbolFinish
	case c.IsWall:
		return SymbolWall
	default:
		return SymbolOpen
	}
}
