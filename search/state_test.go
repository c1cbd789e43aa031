package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func TestNewState_Sentinels(t *testing.T) {
	g := mustParse(t, "S.", ".F")
	s := search.NewState(g)
	assert.Same(t, g, s.Grid())
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		assert.Equal(t, search.Unreached, s.Distance(c))
		assert.Equal(t, search.Unreached, s.TotalDistance(c))
		assert.False(t, s.IsVisited(c))
		_, ok := s.Previous(c)
		assert.False(t, ok)
	}
	outside := grid.Coord{Row: 5, Col: 5}
	assert.Equal(t, search.Unreached, s.Distance(outside))
	assert.Equal(t, search.Unreached, s.TotalDistance(outside))
	assert.False(t, s.IsVisited(outside))
	_, ok := s.Previous(outside)
	assert.False(t, ok)
}

func TestState_Reset(t *testing.T) {
	g := mustParse(t, "S..", "..F")
	res, err := search.Dijkstra(g, g.Start, g.Finish)
	require.NoError(t, err)
	require.True(t, res.State.IsVisited(g.Finish))

	res.State.Reset()
	assert.False(t, res.State.IsVisited(g.Finish))
	assert.Equal(t, search.Unreached, res.State.Distance(g.Start))
	assert.Equal(t, []grid.Coord{g.Finish}, search.ReconstructPath(res.State, g.Finish))
}

func TestNeighbors_Order(t *testing.T) {
	g := mustParse(t,
		"S..",
		".#.",
		"..F",
	)
	s := search.NewState(g)

	center := search.Neighbors(s, grid.Coord{Row: 1, Col: 1})
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, center)

	corner := search.Neighbors(s, grid.Coord{Row: 0, Col: 0})
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, corner, "walls are not filtered here")

	edge := search.Neighbors(s, grid.Coord{Row: 2, Col: 1})
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, edge)

	assert.Nil(t, search.Neighbors(s, grid.Coord{Row: -1, Col: 0}))
}

func TestNeighbors_SkipsVisited(t *testing.T) {
	g := mustParse(t,
		"S..",
		"..F",
	)
	res, err := search.GreedyBestFirst(g, g.Start, g.Finish)
	require.NoError(t, err)

	// (1,1) sees only (0,1); (1,0) and (1,2) were finalized.
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}}, search.Neighbors(res.State, grid.Coord{Row: 1, Col: 1}))
	assert.Empty(t, search.Neighbors(res.State, grid.Coord{Row: 1, Col: 0}))
}

func TestReconstructPath(t *testing.T) {
	g := mustParse(t, "S...F")

	t.Run("NoPredecessor", func(t *testing.T) {
		s := search.NewState(g)
		assert.Equal(t, []grid.Coord{g.Finish}, search.ReconstructPath(s, g.Finish))
	})
	t.Run("StartOnly", func(t *testing.T) {
		res, err := search.BFS(g, g.Start, g.Start)
		require.NoError(t, err)
		assert.Equal(t, []grid.Coord{g.Start}, search.ReconstructPath(res.State, g.Start))
	})
	t.Run("Corridor", func(t *testing.T) {
		res, err := search.DFS(g, g.Start, g.Finish)
		require.NoError(t, err)
		path := search.ReconstructPath(res.State, g.Finish)
		require.Len(t, path, 5)
		for i, c := range path {
			assert.Equal(t, grid.Coord{Row: 0, Col: i}, c)
		}
	})
}
