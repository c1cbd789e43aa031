package maze

import "github.com/katalvlaran/gridpath/grid"

// Pattern returns a cleared copy of g with walls on every Period-th column,
// interrupted on every Period-th row. Cells within a square of radius
// Proximity around start or finish stay open. Reachability is not checked.
func Pattern(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*grid.Grid, error) {
	o, err := prepare(g, start, finish, opts)
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	out.ClearWalls()
	for i := 0; i < out.Len(); i++ {
		c := out.Coordinate(i)
		if keepOpen(out, c, start, finish) || near(c, start, o.Proximity) || near(c, finish, o.Proximity) {
			continue
		}
		if c.Col%o.Period == 0 && c.Row%o.Period != 0 {
			_ = out.SetWall(c, true)
		}
	}
	return out, nil
}

// near reports whether c lies in the (2r+1)×(2r+1) square centered on p.
func near(c, p grid.Coord, r int) bool {
	dr, dc := c.Row-p.Row, c.Col-p.Col
	return dr >= -r && dr <= r && dc >= -r && dc <= r
}
