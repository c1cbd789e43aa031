package grid

import "strconv"

// Reference deployment dimensions and endpoints.
const (
	DefaultRows      = 20
	DefaultCols      = 50
	DefaultStartRow  = 10
	DefaultStartCol  = 15
	DefaultFinishRow = 10
	DefaultFinishCol = 35
)

// Board symbols used by Parse and Lines.
const (
	SymbolOpen   = '.'
	SymbolWall   = '#'
	SymbolStart  = 'S'
	SymbolFinish = 'F'
)

// Coord addresses one cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "row,col".
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Cell is the static part of a grid node: its coordinates, its role flags
// and its wall state. IsStart and IsFinish never change after construction.
type Cell struct {
	Row, Col int
	IsStart  bool
	IsFinish bool
	IsWall   bool
}

// Coord returns the cell's coordinates.
func (c Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// Grid is a fixed-size board of Rows×Cols cells stored row-major.
// Dimensions, Start and Finish are immutable once built; only walls change.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	Rows, Cols int
	Start      Coord
	Finish     Coord
	cells      []Cell
}

// offsets is the neighbor order shared by all traversals: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
