// Package core_test contains test helpers for simplegraph/core.
//
// Purpose:
//   - Small deterministic fixtures shared by the core tests.
//   - Invariant checks expressed purely through the public query surface.

package core_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/core"
)

// Float tolerance for aggregate comparisons.
const eps = 1e-9

// Common vertex labels used across core tests.
const (
	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"
	VertexE = "e"
	VertexF = "f"
)

// pathGraph is the adjacency fixture shared with the dfs tests.
func pathGraph() map[string][]string {
	return map[string][]string{
		VertexA: {VertexD},
		VertexB: {VertexC},
		VertexC: {VertexB, VertexC, VertexD, VertexE},
		VertexD: {VertexA, VertexC},
		VertexE: {VertexC},
		VertexF: {},
	}
}

// requireIndexConsistent checks forward/reverse index agreement for every vertex.
func requireIndexConsistent[K cmp.Ordered](t *testing.T, g *core.Graph[K]) {
	t.Helper()
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			require.Contains(t, g.ReverseNeighbors(v), u, "forward %v→%v missing from reverse index", u, v)
			require.True(t, g.HasEdge(u, v))
		}
		for _, w := range g.ReverseNeighbors(u) {
			require.Contains(t, g.Neighbors(w), u, "reverse %v←%v missing from forward index", u, w)
		}
		if !g.Directed() {
			for _, v := range g.Neighbors(u) {
				wuv, _ := g.EdgeWeight(u, v)
				wvu, ok := g.EdgeWeight(v, u)
				require.True(t, ok, "mirror %v→%v missing", v, u)
				require.Equal(t, wuv, wvu, "mirror weights differ for %v,%v", u, v)
			}
		}
	}
}

// requireAggregates recomputes weight totals from scratch and compares them
// with the incrementally maintained ones.
func requireAggregates[K cmp.Ordered](t *testing.T, g *core.Graph[K]) {
	t.Helper()
	var total float64
	for _, u := range g.Vertices() {
		var in float64
		for _, w := range g.ReverseNeighbors(u) {
			x, ok := g.EdgeWeight(w, u)
			require.True(t, ok)
			in += x
		}
		require.InDelta(t, in, g.VertexEdgeWeight(u), eps, "incoming weight of %v", u)
		total += in
	}
	require.InDelta(t, total, g.TotalEdgeWeight(), eps, "total edge weight")
}

// sortedPairs renders pairs in a canonical order for set-like comparisons.
func sortedPairs[K cmp.Ordered](ps []core.Pair[K]) []core.Pair[K] {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(x, y core.Pair[K]) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.To, y.To)
	})
	return out
}
