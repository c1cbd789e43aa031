package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// orientation of a dividing wall.
type orientation int

const (
	horizontal orientation = iota
	vertical
)

// RecursiveDivision returns a copy of g carved by recursive division:
// walls are cleared, the border is walled, and the interior is split by
// full-length walls with exactly one passage each until chambers are
// narrower than two cells. Start and finish are never walled and always end
// up in the single open region.
func RecursiveDivision(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*grid.Grid, error) {
	o, err := prepare(g, start, finish, opts)
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	out.ClearWalls()
	if out.Rows < 3 || out.Cols < 3 {
		return out, nil
	}

	d := &divider{g: out, rng: o.rng(), start: start, finish: finish}
	d.border()
	d.divide(1, out.Rows-2, 1, out.Cols-2)
	for _, p := range []grid.Coord{start, finish, out.Start, out.Finish} {
		d.connect(p)
	}
	return out, nil
}

// divider carries the state of one recursive-division run.
type divider struct {
	g             *grid.Grid
	rng           *rand.Rand
	start, finish grid.Coord
}

// wall sets a wall at (r,c) unless the cell must stay open.
func (d *divider) wall(r, c int) {
	at := grid.Coord{Row: r, Col: c}
	if keepOpen(d.g, at, d.start, d.finish) {
		return
	}
	_ = d.g.SetWall(at, true)
}

// border walls the outermost ring of cells.
func (d *divider) border() {
	last, right := d.g.Rows-1, d.g.Cols-1
	for c := 0; c <= right; c++ {
		d.wall(0, c)
		d.wall(last, c)
	}
	for r := 1; r < last; r++ {
		d.wall(r, 0)
		d.wall(r, right)
	}
}

// divide splits the open chamber [rs..re]×[cs..ce]. Chambers always start on
// an odd row and column; walls go on even lines, passages on odd ones.
func (d *divider) divide(rs, re, cs, ce int) {
	if re-rs < 2 || ce-cs < 2 {
		return
	}
	switch d.orient(re-rs, ce-cs) {
	case horizontal:
		r, okWall := d.pick(rs+1, re-1, 0)
		p, okGap := d.pick(cs, ce, 1)
		if !okWall || !okGap {
			return
		}
		for c := cs; c <= ce; c++ {
			if c != p {
				d.wall(r, c)
			}
		}
		d.divide(rs, r-1, cs, ce)
		d.divide(r+1, re, cs, ce)
	case vertical:
		c, okWall := d.pick(cs+1, ce-1, 0)
		p, okGap := d.pick(rs, re, 1)
		if !okWall || !okGap {
			return
		}
		for r := rs; r <= re; r++ {
			if r != p {
				d.wall(r, c)
			}
		}
		d.divide(rs, re, cs, c-1)
		d.divide(rs, re, c+1, ce)
	}
}

// orient picks the wall direction from the chamber's spans: wider chambers
// get a vertical wall, taller ones a horizontal wall, squares either.
func (d *divider) orient(height, width int) orientation {
	switch {
	case width > height:
		return vertical
	case height > width:
		return horizontal
	default:
		return orientation(d.rng.Intn(2))
	}
}

// pick returns a random value of the given parity (0 even, 1 odd) in [lo, hi].
func (d *divider) pick(lo, hi, parity int) (int, bool) {
	if lo%2 != parity {
		lo++
	}
	if lo > hi {
		return 0, false
	}
	return lo + 2*between(d.rng, 0, (hi-lo)/2), true
}

// connect opens an L-shaped run of cells from p to the nearest interior cell
// with odd row and odd column. Such cells are never walled, so p joins the
// open region; opening cells never splits it.
func (d *divider) connect(p grid.Coord) {
	target := grid.Coord{
		Row: nearestOdd(p.Row, d.g.Rows-2),
		Col: nearestOdd(p.Col, d.g.Cols-2),
	}
	at := p
	for at != target {
		switch {
		case at.Row < target.Row:
			at.Row++
		case at.Row > target.Row:
			at.Row--
		case at.Col < target.Col:
			at.Col++
		default:
			at.Col--
		}
		_ = d.g.SetWall(at, false)
	}
}

// nearestOdd clamps v into [1, hi] and rounds it down to an odd value.
// hi ≥ 1 is required.
func nearestOdd(v, hi int) int {
	if hi%2 == 0 {
		hi--
	}
	switch {
	case v < 1:
		return 1
	case v > hi:
		return hi
	case v%2 == 0:
		return v - 1
	default:
		return v
	}
}
