package server

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// SearchRequest asks for one search over a text board.
type SearchRequest struct {
	Grid      []string `json:"grid" binding:"required"`
	Algorithm string   `json:"algorithm" binding:"required"`
}

// Metrics summarizes a finished search.
type Metrics struct {
	NodesVisited    int     `json:"nodes_visited"`
	PathLength      int     `json:"path_length"`
	ExecutionTimeMS float64 `json:"execution_time_ms"`
}

// SearchResponse carries the visit order and the reconstructed path as
// [row, col] pairs.
type SearchResponse struct {
	ID        string           `json:"id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Visited   [][2]int         `json:"visited"`
	Path      [][2]int         `json:"path"`
	Metrics   Metrics          `json:"metrics"`
}

// MazeRequest asks a generator to rewrite a board. An empty Grid selects the
// configured default board; zero Seed and nil WallProbability fall back to
// configuration.
type MazeRequest struct {
	Grid            []string `json:"grid"`
	Generator       string   `json:"generator" binding:"required"`
	Seed            int64    `json:"seed"`
	WallProbability *float64 `json:"wall_probability"`
}

// MazeResponse returns the generated board as text rows.
type MazeResponse struct {
	ID        string   `json:"id"`
	Generator string   `json:"generator"`
	Seed      int64    `json:"seed"`
	Grid      []string `json:"grid"`
	Walls     int      `json:"walls"`
	Connected bool     `json:"connected"`
}

// GridResponse returns a board and its endpoints.
type GridResponse struct {
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Start  grid.Coord `json:"start"`
	Finish grid.Coord `json:"finish"`
	Grid   []string   `json:"grid"`
}

// pairs converts coordinates into [row, col] pairs; never returns nil so the
// JSON carries [] rather than null.
func pairs(cs []grid.Coord) [][2]int {
	out := make([][2]int, len(cs))
	for i, c := range cs {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}
