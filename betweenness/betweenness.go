package betweenness

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// arc is an outgoing edge captured once per Compute call.
type arc[K cmp.Ordered] struct {
	to     K
	weight float64
}

// Compute runs Brandes' algorithm from every vertex of g and returns the
// scaled vertex and edge betweenness.
func Compute[K cmp.Ordered](g *core.Graph[K], opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	adj := make(map[K][]arc[K], len(vertices))
	for _, v := range vertices {
		nbrs := g.Neighbors(v)
		arcs := make([]arc[K], 0, len(nbrs))
		for _, w := range nbrs {
			wt, _ := g.EdgeWeight(v, w)
			arcs = append(arcs, arc[K]{to: w, weight: wt})
		}
		adj[v] = arcs
	}

	res := &Result[K]{
		Vertices: make(map[K]float64, len(vertices)),
		Edges:    make(map[core.Pair[K]]float64),
	}
	for _, v := range vertices {
		res.Vertices[v] = 0
	}
	for _, p := range g.Edges() {
		res.Edges[p] = 0
	}

	for _, s := range vertices {
		sp, err := shortestPaths(adj, s)
		if err != nil {
			return nil, err
		}
		sp.accumulate(res)
	}

	scale := scaleFor(len(vertices), cfg.Normalized, g.Directed())
	if scale != 1 {
		for k := range res.Vertices {
			res.Vertices[k] *= scale
		}
		for k := range res.Edges {
			res.Edges[k] *= scale
		}
	}

	return res, nil
}

// EdgeBetweenness is Compute restricted to edge scores.
func EdgeBetweenness[K cmp.Ordered](g *core.Graph[K], opts ...Option) (map[core.Pair[K]]float64, error) {
	res, err := Compute(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}

// VertexBetweenness is Compute restricted to vertex scores.
func VertexBetweenness[K cmp.Ordered](g *core.Graph[K], opts ...Option) (map[K]float64, error) {
	res, err := Compute(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Vertices, nil
}

func scaleFor(n int, normalized, directed bool) float64 {
	switch {
	case normalized && n > 1:
		return 1 / float64(n*(n-1))
	case !normalized && !directed:
		return 0.5
	default:
		return 1
	}
}

// pathTree is the single-source shortest-path DAG of one Dijkstra run.
type pathTree[K cmp.Ordered] struct {
	source  K
	settled []K // settling order
	sigma   map[K]float64
	preds   map[K][]K
}

// shortestPaths expands from s over adj, counting shortest paths and
// recording every tied predecessor.
func shortestPaths[K cmp.Ordered](adj map[K][]arc[K], s K) (*pathTree[K], error) {
	t := &pathTree[K]{
		source: s,
		sigma:  map[K]float64{s: 1},
		preds:  map[K][]K{s: nil},
	}
	dist := make(map[K]float64) // settled
	seen := map[K]float64{s: 0} // tentative

	pq := make(distPQ[K], 0, len(adj))
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, queueItem[K]{dist: 0, seq: seq, pred: s, v: s})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(queueItem[K])
		v := item.v
		if _, done := dist[v]; done {
			continue
		}
		if v != s {
			t.sigma[v] += t.sigma[item.pred]
		}
		t.settled = append(t.settled, v)
		dist[v] = item.dist

		for _, a := range adj[v] {
			w := a.to
			d := item.dist + a.weight
			if dw, done := dist[w]; done {
				if d < dw {
					return nil, fmt.Errorf("%w: %v→%v improves %v to %g", ErrContradictoryPaths, v, w, w, d)
				}
				continue
			}
			prev, ok := seen[w]
			switch {
			case !ok || d < prev:
				seen[w] = d
				seq++
				heap.Push(&pq, queueItem[K]{dist: d, seq: seq, pred: v, v: w})
				t.sigma[w] = 0
				t.preds[w] = []K{v}
			case d == prev:
				t.sigma[w] += t.sigma[v]
				t.preds[w] = append(t.preds[w], v)
			}
		}
	}

	return t, nil
}

// accumulate walks the settled vertices in reverse and adds the
// dependencies of this source into res.
func (t *pathTree[K]) accumulate(res *Result[K]) {
	delta := make(map[K]float64, len(t.settled))
	for i := len(t.settled) - 1; i >= 0; i-- {
		w := t.settled[i]
		coeff := (1 + delta[w]) / t.sigma[w]
		for _, v := range t.preds[w] {
			c := t.sigma[v] * coeff
			key := core.Pair[K]{From: v, To: w}
			if _, ok := res.Edges[key]; !ok {
				key = key.Reverse()
			}
			res.Edges[key] += c
			delta[v] += c
		}
		if w != t.source {
			res.Vertices[w] += delta[w]
		}
	}
}
