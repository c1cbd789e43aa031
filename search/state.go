package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Unreached is the distance sentinel for cells no search has reached.
const Unreached = math.MaxInt

// noPrev marks a cell without predecessor.
const noPrev = -1

// State is the search-scoped working table for one run, indexed row-major
// like the grid it was built for. Predecessors are stored as indices, so the
// predecessor tree holds no references into the grid.
type State struct {
	g       *grid.Grid
	dist    []int
	total   []int
	visited []bool
	prev    []int
}

// NewState returns a State for g with every cell at its sentinel values.
func NewState(g *grid.Grid) *State {
	n := g.Len()
	s := &State{
		g:       g,
		dist:    make([]int, n),
		total:   make([]int, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
	}
	s.Reset()
	return s
}

// Reset restores every cell to unreached, unvisited and predecessor-free.
func (s *State) Reset() {
	for i := range s.dist {
		s.dist[i] = Unreached
		s.total[i] = Unreached
		s.visited[i] = false
		s.prev[i] = noPrev
	}
}

// Grid returns the grid this state was built for.
func (s *State) Grid() *grid.Grid { return s.g }

// Distance returns the cost-so-far of c, or Unreached.
func (s *State) Distance(c grid.Coord) int {
	if !s.g.InBounds(c) {
		return Unreached
	}
	return s.dist[s.g.Index(c)]
}

// TotalDistance returns distance + heuristic for c as recorded by a
// heuristic-ordered search, or Unreached.
func (s *State) TotalDistance(c grid.Coord) int {
	if !s.g.InBounds(c) {
		return Unreached
	}
	return s.total[s.g.Index(c)]
}

// IsVisited reports whether a search committed to c.
func (s *State) IsVisited(c grid.Coord) bool {
	return s.g.InBounds(c) && s.visited[s.g.Index(c)]
}

// Previous returns the predecessor of c on its best-known path, if any.
func (s *State) Previous(c grid.Coord) (grid.Coord, bool) {
	if !s.g.InBounds(c) {
		return grid.Coord{}, false
	}
	p := s.prev[s.g.Index(c)]
	if p == noPrev {
		return grid.Coord{}, false
	}
	return s.g.Coordinate(p), true
}
