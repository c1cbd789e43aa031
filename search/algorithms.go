package search

import "github.com/katalvlaran/gridpath/grid"

// Dijkstra expands cells in order of increasing distance from start. Every
// unvisited neighbor of a finalized cell takes distance+1 and that cell as
// predecessor; with unit edges the first finalization of a cell is optimal.
// Returns ErrNilGrid or ErrOutOfBounds for invalid input.
func Dijkstra(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	return execute(dijkstraPolicy, g, start, finish, opts)
}

// AStar expands cells in order of f = g + h, where h is the Manhattan
// distance to finish. A neighbor is updated only when a strictly shorter
// cost is found.
func AStar(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	return execute(astarPolicy, g, start, finish, opts)
}

// BFS expands cells level by level from a FIFO queue. A cell is marked
// visited the moment it is discovered and is never relaxed again.
func BFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	return execute(bfsPolicy, g, start, finish, opts)
}

// DFS expands the most recently discovered cell first. It finds a path,
// not necessarily the shortest one.
func DFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	return execute(dfsPolicy, g, start, finish, opts)
}

// GreedyBestFirst expands the frontier cell closest to finish by Manhattan
// distance, ignoring accumulated cost. Every sighting of an unvisited cell
// overwrites its predecessor, even if the cell is already waiting on the
// frontier; the reported path follows the last overwrite. Distance is set
// from the predecessor at the moment a cell is finalized.
func GreedyBestFirst(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	return execute(greedyPolicy, g, start, finish, opts)
}

var dijkstraPolicy = policy{
	alg:         AlgoDijkstra,
	newFrontier: func(n int) frontier { return newPriority(n) },
	seed: func(w *walker, start int) int {
		w.st.dist[start] = 0
		return 0
	},
	relax: func(w *walker, u, nb int) (bool, int) {
		d := w.st.dist[u] + 1
		old := w.st.dist[nb]
		w.st.dist[nb] = d
		w.st.prev[nb] = u
		return d < old, d
	},
}

var astarPolicy = policy{
	alg:         AlgoAStar,
	newFrontier: func(n int) frontier { return newPriority(n) },
	seed: func(w *walker, start int) int {
		w.st.dist[start] = 0
		w.st.total[start] = w.heuristic(start)
		return w.st.total[start]
	},
	relax: func(w *walker, u, nb int) (bool, int) {
		d := w.st.dist[u] + 1
		if d >= w.st.dist[nb] {
			return false, 0
		}
		w.st.dist[nb] = d
		w.st.prev[nb] = u
		w.st.total[nb] = d + w.heuristic(nb)
		return true, w.st.total[nb]
	},
}

var bfsPolicy = policy{
	alg:            AlgoBFS,
	newFrontier:    func(n int) frontier { return newQueue(n) },
	markOnDiscover: true,
	seed:           seedZero,
	relax:          relaxFirstDiscovery,
}

var dfsPolicy = policy{
	alg:            AlgoDFS,
	newFrontier:    func(n int) frontier { return newStack(n) },
	markOnDiscover: true,
	seed:           seedZero,
	relax:          relaxFirstDiscovery,
}

var greedyPolicy = policy{
	alg:         AlgoGreedy,
	newFrontier: func(n int) frontier { return newPriority(n) },
	seed: func(w *walker, start int) int {
		w.st.dist[start] = 0
		return w.heuristic(start)
	},
	relax: func(w *walker, u, nb int) (bool, int) {
		w.st.prev[nb] = u
		return true, w.heuristic(nb)
	},
	onFinalize: func(w *walker, u int) {
		if p := w.st.prev[u]; p != noPrev {
			w.st.dist[u] = w.st.dist[p] + 1
		}
	},
}

func seedZero(w *walker, start int) int {
	w.st.dist[start] = 0
	return 0
}

// relaxFirstDiscovery accepts a neighbor on first sight. The engine only
// offers unvisited neighbors, and BFS/DFS mark cells visited on discovery.
func relaxFirstDiscovery(w *walker, u, nb int) (bool, int) {
	w.st.dist[nb] = w.st.dist[u] + 1
	w.st.prev[nb] = u
	return true, 0
}
