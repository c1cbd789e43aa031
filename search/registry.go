package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Algorithm names one search strategy.
type Algorithm string

// Supported algorithms.
const (
	AlgoDijkstra Algorithm = "dijkstra"
	AlgoAStar    Algorithm = "astar"
	AlgoBFS      Algorithm = "bfs"
	AlgoDFS      Algorithm = "dfs"
	AlgoGreedy   Algorithm = "greedy"
)

// Info describes an algorithm for pickers and legends.
type Info struct {
	Algorithm          Algorithm `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Frontier           string    `json:"frontier"`
	Informed           bool      `json:"informed"`
	GuaranteesShortest bool      `json:"guarantees_shortest"`
}

var catalog = []Info{
	{AlgoDijkstra, "Dijkstra's Algorithm",
		"Guarantees the shortest path, explores uniformly in all directions.",
		"priority", false, true},
	{AlgoAStar, "A* Search",
		"Uses a Manhattan heuristic to find the shortest path with fewer expansions than Dijkstra.",
		"priority", true, true},
	{AlgoBFS, "Breadth-First Search",
		"Explores nearest neighbors first, guarantees the shortest path on unweighted grids.",
		"queue", false, true},
	{AlgoDFS, "Depth-First Search",
		"Explores as far as possible along each branch before backtracking.",
		"stack", false, false},
	{AlgoGreedy, "Greedy Best-First Search",
		"Always moves toward the goal by heuristic, ignoring path cost.",
		"priority", true, false},
}

var aliases = map[string]Algorithm{
	"a*":                AlgoAStar,
	"a-star":            AlgoAStar,
	"breadth-first":     AlgoBFS,
	"depth-first":       AlgoDFS,
	"greedybfs":         AlgoGreedy,
	"greedy-best-first": AlgoGreedy,
}

// Algorithms returns the catalog in presentation order.
func Algorithms() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Describe returns the catalog entry for alg.
func Describe(alg Algorithm) (Info, error) {
	for _, info := range catalog {
		if info.Algorithm == alg {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// ParseAlgorithm resolves a case-insensitive name or alias.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alg, ok := aliases[key]; ok {
		return alg, nil
	}
	if _, err := Describe(Algorithm(key)); err != nil {
		return "", err
	}
	return Algorithm(key), nil
}

// Run dispatches to the strategy named by alg.
func Run(alg Algorithm, g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	switch alg {
	case AlgoDijkstra:
		return Dijkstra(g, start, finish, opts...)
	case AlgoAStar:
		return AStar(g, start, finish, opts...)
	case AlgoBFS:
		return BFS(g, start, finish, opts...)
	case AlgoDFS:
		return DFS(g, start, finish, opts...)
	case AlgoGreedy:
		return GreedyBestFirst(g, start, finish, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
