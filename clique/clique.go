package clique

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/simplegraph/core"
)

// FindCliques returns every maximal clique of g in enumeration order.
// Members of each clique are sorted ascending. Self-loops are ignored and a
// directed graph is read through its underlying undirected view.
//
// Returns ErrGraphNil if g is nil. An empty graph has no cliques.
func FindCliques[K cmp.Ordered](g *core.Graph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make([][]K, 0)
	enumerate(undirectedView(g), func(q []K) {
		c := slices.Clone(q)
		slices.Sort(c)
		out = append(out, c)
	})

	return out, nil
}

// MaxClique returns the largest maximal clique, the first one found on ties.
// The result is nil for an empty graph.
func MaxClique[K cmp.Ordered](g *core.Graph[K]) ([]K, error) {
	all, err := FindCliques(g)
	if err != nil {
		return nil, err
	}

	var best []K
	for _, c := range all {
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}

// undirectedView maps every vertex to its neighbors in either direction,
// without itself.
func undirectedView[K cmp.Ordered](g *core.Graph[K]) map[K]vertexSet[K] {
	adj := make(map[K]vertexSet[K], g.Order())
	for _, u := range g.Vertices() {
		set := make(vertexSet[K])
		for _, v := range g.Neighbors(u) {
			set[v] = struct{}{}
		}
		if g.Directed() {
			for _, v := range g.ReverseNeighbors(u) {
				set[v] = struct{}{}
			}
		}
		delete(set, u)
		adj[u] = set
	}
	return adj
}

// pivot picks the vertex of subg with the most neighbors in cand; the
// smallest label wins ties.
func pivot[K cmp.Ordered](adj map[K]vertexSet[K], subg, cand vertexSet[K]) K {
	var (
		best  K
		score = -1
	)
	for _, u := range subg.sorted() {
		if n := adj[u].countIn(cand); n > score {
			best, score = u, n
		}
	}
	return best
}

// enumerate is Bron–Kerbosch with pivoting, driven by an explicit stack.
// emit receives the current clique, which it must not retain.
func enumerate[K cmp.Ordered](adj map[K]vertexSet[K], emit func([]K)) {
	if len(adj) == 0 {
		return
	}

	all := make([]K, 0, len(adj))
	for v := range adj {
		all = append(all, v)
	}
	subg := newVertexSet(all)
	cand := newVertexSet(all)
	extU := cand.minus(adj[pivot(adj, subg, cand)])

	q := make([]K, 1)
	var stack []frame[K]
	for {
		if len(extU) == 0 {
			if len(stack) == 0 {
				return
			}
			q = q[:len(q)-1]
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			subg, cand, extU = top.subg, top.cand, top.extU
			continue
		}

		v := extU[0]
		extU = extU[1:]
		delete(cand, v)
		q[len(q)-1] = v

		adjV := adj[v]
		subgV := subg.intersect(adjV)
		if len(subgV) == 0 {
			emit(q)
			continue
		}
		candV := cand.intersect(adjV)
		if len(candV) == 0 {
			continue
		}
		stack = append(stack, frame[K]{subg: subg, cand: cand, extU: extU})
		q = append(q, v)
		subg, cand = subgV, candV
		extU = cand.minus(adj[pivot(adj, subg, cand)])
	}
}
