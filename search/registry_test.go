package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dijkstra":  search.AlgoDijkstra,
		" AStar ":   search.AlgoAStar,
		"a*":        search.AlgoAStar,
		"BFS":       search.AlgoBFS,
		"dfs":       search.AlgoDFS,
		"greedy":    search.AlgoGreedy,
		"greedyBFS": search.AlgoGreedy,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithms_Catalog(t *testing.T) {
	infos := search.Algorithms()
	require.Len(t, infos, 5)
	ids := make([]search.Algorithm, len(infos))
	for i, info := range infos {
		ids[i] = info.Algorithm
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []search.Algorithm{
		search.AlgoDijkstra, search.AlgoAStar, search.AlgoBFS, search.AlgoDFS, search.AlgoGreedy,
	}, ids)

	info, err := search.Describe(search.AlgoDFS)
	require.NoError(t, err)
	assert.False(t, info.GuaranteesShortest)
	assert.Equal(t, "stack", info.Frontier)

	_, err = search.Describe("nope")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	infos[0].Name = "mutated"
	again, _ := search.Describe(search.AlgoDijkstra)
	assert.NotEqual(t, "mutated", again.Name)
}

func TestRun_Dispatch(t *testing.T) {
	g := mustParse(t, "S.", ".F")
	for _, info := range search.Algorithms() {
		res, err := search.Run(info.Algorithm, g, g.Start, g.Finish)
		require.NoError(t, err)
		assert.Equal(t, info.Algorithm, res.Algorithm)
		assert.True(t, res.Found())
	}
	res, err := search.Run("nope", g, g.Start, g.Finish)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}
