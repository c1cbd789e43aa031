package main

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Overlay symbols drawn on top of the board.
const (
	symbolVisited = 'o'
	symbolPath    = '*'
)

// overlay renders g with finalized cells marked 'o' and, when the finish was
// reached, the path marked '*'. Start and finish keep their letters.
func overlay(g *grid.Grid, res *search.Result) []string {
	rows := make([][]byte, g.Rows)
	for r, line := range g.Lines() {
		rows[r] = []byte(line)
	}
	mark := func(c grid.Coord, sym byte) {
		if g.Cell(c).IsStart || g.Cell(c).IsFinish {
			return
		}
		rows[c.Row][c.Col] = sym
	}
	for _, c := range res.Order {
		mark(c, symbolVisited)
	}
	if res.Found() {
		for _, c := range res.Path() {
			mark(c, symbolPath)
		}
	}

	out := make([]string, g.Rows)
	for r := range rows {
		out[r] = string(rows[r])
	}
	return out
}
