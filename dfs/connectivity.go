package dfs

import (
	"cmp"

	"github.com/katalvlaran/simplegraph/core"
)

// IsConnected reports whether every vertex is reachable from the first vertex
// (insertion order) along forward edges. A graph with no vertices is
// connected. Directed graphs get a one-way reachability check from that
// vertex only.
//
// Complexity: O(V+E).
func IsConnected[K cmp.Ordered](g *core.Graph[K]) bool {
	vs := g.Vertices()
	if len(vs) == 0 {
		return true
	}
	return len(reach(g, vs[0])) == len(vs)
}

// reach returns the set of vertices reachable from start, start included.
func reach[K cmp.Ordered](g *core.Graph[K], start K) map[K]bool {
	seen := map[K]bool{start: true}
	stack := []K{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.Neighbors(u) {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}
	return seen
}

// FindIsolated returns, in insertion order, the vertices that have neither
// forward nor reverse neighbors.
//
// Complexity: O(V).
func FindIsolated[K cmp.Ordered](g *core.Graph[K]) []K {
	out := make([]K, 0)
	for _, v := range g.Vertices() {
		if len(g.Neighbors(v)) == 0 && len(g.ReverseNeighbors(v)) == 0 {
			out = append(out, v)
		}
	}
	return out
}

// Diameter returns the largest, over all unordered vertex pairs {vs[i], vs[j]}
// with i < j, of the edge count of the shortest simple path from vs[i] to
// vs[j]. Every pair's paths are enumerated with FindAllPaths, so this is only
// practical on small graphs.
//
// Returns Infinity if the graph is not connected, or if some pair has no
// path in the vs[i]→vs[j] direction (possible on directed graphs). Graphs
// with fewer than two vertices have diameter 0.
func Diameter[K cmp.Ordered](g *core.Graph[K]) int {
	if !IsConnected(g) {
		return Infinity
	}

	vs := g.Vertices()
	diameter := 0
	for i := 0; i < len(vs)-1; i++ {
		for j := i + 1; j < len(vs); j++ {
			shortest := Infinity
			walk(g, vs[i], vs[j], func(p []K) bool {
				if len(p) < shortest {
					shortest = len(p)
				}
				return true
			})
			if shortest == Infinity {
				return Infinity
			}
			if shortest-1 > diameter {
				diameter = shortest - 1
			}
		}
	}

	return diameter
}
