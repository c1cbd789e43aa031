package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// prepare validates input and folds opts over the defaults.
func prepare(g *grid.Grid, start, finish grid.Coord, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Options{}, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return Options{}, fmt.Errorf("%w: finish %s", ErrOutOfBounds, finish)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// keepOpen reports whether c must stay open: it is one of the endpoints the
// caller named or one of the grid's own start/finish cells.
func keepOpen(g *grid.Grid, c, start, finish grid.Coord) bool {
	return c == start || c == finish || g.IsProtected(c)
}
