package grid

// Components finds every 4-connected region of open (non-wall) cells.
// Each component is a slice of row-major indices in BFS discovery order;
// components are listed in row-major order of their first cell.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0 := range g.cells {
		if g.cells[i0].IsWall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range offsets {
				v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if g.cells[vi].IsWall || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether all open cells form one region that holds both
// start and finish. A walled start or finish makes it false.
func (g *Grid) Connected() bool {
	comps := g.Components()
	if len(comps) != 1 {
		return false
	}
	return !g.IsWall(g.Start) && !g.IsWall(g.Finish)
}
