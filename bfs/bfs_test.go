package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/bfs"
	"github.com/katalvlaran/simplegraph/core"
)

func fixture() *core.Graph[string] {
	return core.FromAdjacency(map[string][]string{
		"a": {"d"},
		"b": {"c"},
		"c": {"b", "c", "d", "e"},
		"d": {"a", "c"},
		"e": {"c"},
		"f": {},
	})
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(fixture(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "c", "b", "e"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "d": 1, "c": 2, "b": 3, "e": 3}, res.Depth)
	_, hasParent := res.Parent["a"]
	assert.False(t, hasParent, "start vertex has no parent")

	p, ok := res.PathTo("e")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "d", "c", "e"}, p)
	_, ok = res.PathTo("f")
	assert.False(t, ok)
}

func TestReachable(t *testing.T) {
	got, err := bfs.Reachable(fixture(), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e", "a"}, got)

	only, err := bfs.Reachable(fixture(), "f")
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, only)

	_, err = bfs.Reachable(fixture(), "zz")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_InvalidInput(t *testing.T) {
	_, err := bfs.BFS[string](nil, "a")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(fixture(), "zz")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Components[string](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(fixture())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "d", "c", "b", "e"}, {"f"}}, comps)

	empty, err := bfs.Components(core.NewGraph[int]())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestComponents_DirectedFollowsForwardEdges(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	_, _ = g.AddVertex("a")
	require.NoError(t, g.AddEdge("b", "a"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, comps)

	chain := core.NewGraph[int](core.WithDirected(true))
	require.NoError(t, chain.AddEdge(2, 1))
	require.NoError(t, chain.AddEdge(1, 0))
	comps2, err := bfs.Components(chain)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 1, 0}}, comps2)
}

func TestComponents_PartitionIsComplete(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 30; i++ {
		require.NoError(t, g.AddEdge(i, (i*3)%30))
	}
	comps, err := bfs.Components(g)
	require.NoError(t, err)

	seen := make(map[int]int)
	for idx, c := range comps {
		for _, v := range c {
			_, dup := seen[v]
			require.False(t, dup, "vertex %d in two components", v)
			seen[v] = idx
		}
	}
	assert.Len(t, seen, g.Order())
}
