package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleAStar finds a shortest route around a wall.
func ExampleAStar() {
	g, _ := grid.Parse([]string{
		"S.#.",
		"..#.",
		"...F",
	})
	res, err := search.AStar(g, g.Start, g.Finish)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found())
	fmt.Println("steps:", res.PathLength())
	fmt.Println("path:", res.Path())
	// Output:
	// found: true
	// steps: 5
	// path: [0,0 1,0 2,0 2,1 2,2 2,3]
}

// ExampleRun replays the visit order of a breadth-first search.
func ExampleRun() {
	g, _ := grid.Parse([]string{"S.F"})
	_, _ = search.Run(search.AlgoBFS, g, g.Start, g.Finish,
		search.WithOnVisit(func(c grid.Coord, step int) {
			fmt.Printf("%d:%s\n", step, c)
		}),
	)
	// Output:
	// 0:0,0
	// 1:0,1
	// 2:0,2
}
