package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// policy is what distinguishes one strategy from another: the frontier it
// draws from, when a cell counts as visited, and how neighbors are relaxed.
type policy struct {
	alg Algorithm

	// newFrontier builds an empty frontier sized for n cells.
	newFrontier func(n int) frontier

	// markOnDiscover sets the visited flag when a cell is pushed (BFS, DFS)
	// instead of when it is popped.
	markOnDiscover bool

	// seed prepares the start cell's state and returns its frontier key.
	seed func(w *walker, start int) int

	// relax handles one unvisited, non-wall neighbor nb of the cell u just
	// finalized, returning whether nb goes onto the frontier and with which key.
	relax func(w *walker, u, nb int) (push bool, key int)

	// onFinalize, if set, runs when a cell is appended to the order.
	onFinalize func(w *walker, u int)
}

// walker encapsulates the mutable state of one run.
type walker struct {
	g      *grid.Grid
	st     *State
	pol    policy
	opts   Options
	front  frontier
	finish int
	res    *Result
}

// execute validates input, applies options and runs pol from start to finish.
func execute(pol policy, g *grid.Grid, start, finish grid.Coord, opts []Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %s", ErrOutOfBounds, finish)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &walker{
		g:      g,
		st:     NewState(g),
		pol:    pol,
		opts:   o,
		front:  pol.newFrontier(n),
		finish: g.Index(finish),
	}
	w.res = &Result{
		Algorithm: pol.alg,
		Start:     start,
		Finish:    finish,
		Order:     make([]grid.Coord, 0, n),
		State:     w.st,
	}
	w.loop(g.Index(start))

	return w.res, nil
}

// loop seeds the frontier with start and finalizes cells until finish is
// finalized or the frontier runs dry.
func (w *walker) loop(start int) {
	if w.wall(start) {
		return
	}
	w.push(start, w.pol.seed(w, start))

	var buf [4]int
	for w.front.Len() > 0 {
		u := w.front.Pop()
		if w.wall(u) {
			continue
		}
		// stale duplicate of a cell finalized earlier
		if !w.pol.markOnDiscover && w.st.visited[u] {
			continue
		}
		w.finalize(u)
		if u == w.finish {
			return
		}
		for _, nb := range w.st.unvisitedNeighbors(u, buf[:0]) {
			if w.wall(nb) {
				continue
			}
			if ok, key := w.pol.relax(w, u, nb); ok {
				w.push(nb, key)
			}
		}
	}
}

// push adds idx to the frontier, marking it visited first when the policy
// commits on discovery.
func (w *walker) push(idx, key int) {
	if w.pol.markOnDiscover {
		w.st.visited[idx] = true
	}
	w.opts.OnEnqueue(w.g.Coordinate(idx))
	w.front.Push(idx, key)
}

// finalize records u in the visit order.
func (w *walker) finalize(u int) {
	w.st.visited[u] = true
	if w.pol.onFinalize != nil {
		w.pol.onFinalize(w, u)
	}
	c := w.g.Coordinate(u)
	w.opts.OnVisit(c, len(w.res.Order))
	w.res.Order = append(w.res.Order, c)
}

func (w *walker) wall(idx int) bool {
	return w.g.IsWall(w.g.Coordinate(idx))
}

// heuristic is the Manhattan distance from idx to the finish cell; it never
// overestimates on a 4-connected unit-cost grid.
func (w *walker) heuristic(idx int) int {
	return w.g.Coordinate(idx).Manhattan(w.g.Coordinate(w.finish))
}
