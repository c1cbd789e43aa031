package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse builds a small board from text and inspects it.
func ExampleParse() {
	g, err := grid.Parse([]string{
		"S.#",
		".##",
		"..F",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Rows, g.Cols, g.WallCount())
	fmt.Println(g.Start, g.Finish)
	fmt.Println(len(g.Components()))
	// Output:
	// 3 3 3
	// 0,0 2,2
	// 1
}
