// Package search runs path-finding strategies over a grid.Grid and reports
// the order in which cells were finalized.
//
// What
//
//   - Five strategies share one frontier-ordered engine:
//   - Dijkstra: min-distance priority, unconditional unit relaxation.
//   - AStar: min f = g + h priority (Manhattan h), strict relaxation.
//   - BFS: FIFO queue, first discovery wins.
//   - DFS: LIFO stack, first discovery wins.
//   - GreedyBestFirst: min-h priority, predecessor overwritten on every sighting.
//   - Each run builds a fresh State (distance, f-score, visited flag and
//     predecessor per cell); the grid itself is never written.
//   - Neighbors and ReconstructPath are the traversal primitives every
//     strategy uses; they are exported for callers that post-process a State.
//
// Determinism
//
//	Neighbors are enumerated up, down, left, right. Priority frontiers break
//	ties by insertion order, so every run over the same grid yields the same
//	visit order.
//
// Termination
//
//	A run stops as soon as the finish cell is finalized (it is then the last
//	element of Result.Order) or when the frontier is exhausted. An unreachable
//	finish is not an error: Result.Found reports false.
//
// Degenerate input
//
//   - start == finish: Order and Path are both [start].
//   - start is a wall: Order is empty and nothing is explored.
//   - finish is a wall: the reachable region is exhausted, Found is false.
//
// Complexity (N = rows × cols)
//
//   - Dijkstra, AStar, GreedyBestFirst: O(N log N) time, O(N) memory.
//   - BFS, DFS: O(N) time and memory.
//
// Usage
//
//	res, err := search.AStar(g, g.Start, g.Finish)
//	if err != nil {
//		// ErrNilGrid or ErrOutOfBounds
//	}
//	if res.Found() {
//		path := res.Path()
//		_ = path
//	}
//
//	// or by name:
//	res, err = search.Run(search.AlgoBFS, g, g.Start, g.Finish,
//		search.WithOnVisit(func(c grid.Coord, step int) { /* replay */ }),
//	)
package search
