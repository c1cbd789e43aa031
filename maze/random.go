package maze

import "github.com/katalvlaran/gridpath/grid"

// Random returns a copy of g in which every cell other than start and finish
// independently becomes a wall with probability Options.WallProbability.
// Walls already present in g are kept. The result may be unsolvable.
func Random(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*grid.Grid, error) {
	o, err := prepare(g, start, finish, opts)
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	rng := o.rng()
	for i := 0; i < out.Len(); i++ {
		c := out.Coordinate(i)
		if keepOpen(out, c, start, finish) {
			continue
		}
		if rng.Float64() < o.WallProbability {
			_ = out.SetWall(c, true)
		}
	}
	return out, nil
}
