package search

import "github.com/katalvlaran/gridpath/grid"

// Neighbors returns the in-bounds orthogonal neighbors of c that s has not
// visited, in the order up, down, left, right. Walls are included; the
// strategies decide what to do with them. It does not modify s.
func Neighbors(s *State, c grid.Coord) []grid.Coord {
	if !s.g.InBounds(c) {
		return nil
	}
	var buf [4]int
	idx := s.unvisitedNeighbors(s.g.Index(c), buf[:0])
	out := make([]grid.Coord, len(idx))
	for i, v := range idx {
		out[i] = s.g.Coordinate(v)
	}
	return out
}

// unvisitedNeighbors appends the unvisited neighbor indices of u to buf.
func (s *State) unvisitedNeighbors(u int, buf []int) []int {
	uc := s.g.Coordinate(u)
	for _, d := range s.g.Offsets() {
		v := grid.Coord{Row: uc.Row + d[0], Col: uc.Col + d[1]}
		if !s.g.InBounds(v) {
			continue
		}
		vi := s.g.Index(v)
		if s.visited[vi] {
			continue
		}
		buf = append(buf, vi)
	}
	return buf
}

// ReconstructPath walks predecessor links back from finish and returns the
// path in start→finish order. If finish was never visited the result is
// [finish] alone.
// Complexity: O(path length).
func ReconstructPath(s *State, finish grid.Coord) []grid.Coord {
	if !s.IsVisited(finish) {
		return []grid.Coord{finish}
	}
	// build reversed path; a predecessor chain never exceeds the cell count
	path := []grid.Coord{}
	for at, n := s.g.Index(finish), 0; at != noPrev && n < len(s.prev); at, n = s.prev[at], n+1 {
		path = append(path, s.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
