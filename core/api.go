// File: api.go
// Role: Read-only graph-level getters: orientation, flags, density, weight totals.

package core

// Directed reports the construction-time orientation.
// Complexity: O(1).
func (g *Graph[K]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasSelfLink reports whether a self-loop was ever added to the graph.
// The flag is never cleared, not even when that loop is removed again.
func (g *Graph[K]) HasSelfLink() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasSelfLink
}

// Density returns E'/(V·(V-1)), or E'/V² once HasSelfLink is set, where E' is
// Size() doubled for symmetric graphs. Graphs without a valid denominator
// (no vertices, or a single vertex without the self-link flag) have density 0.
//
// Complexity: O(1).
func (g *Graph[K]) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := float64(g.vertices.len())
	e := float64(g.edges.pairs())
	if !g.directed {
		e *= 2
	}

	denom := v * (v - 1)
	if g.hasSelfLink {
		denom = v * v
	}
	if denom == 0 {
		return 0
	}
	return e / denom
}

// TotalEdgeWeight returns the sum of all stored edge record weights. In
// symmetric mode both records of a mirrored pair count.
// Complexity: O(1); the total is kept incrementally.
func (g *Graph[K]) TotalEdgeWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.total
}

// VertexEdgeWeight returns the summed weight of records whose head is label,
// i.e. the incoming-weight aggregate. A missing label yields 0.
// Complexity: O(1).
func (g *Graph[K]) VertexEdgeWeight(label K) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		return 0
	}
	return g.edges.incoming[id]
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Directed    bool
	HasSelfLink bool
	VertexCount int
	EdgeCount   int
	RecordCount int
	TotalWeight float64
	Density     float64
}

// Stats returns a GraphStats snapshot.
func (g *Graph[K]) Stats() GraphStats {
	density := g.Density()

	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Directed:    g.directed,
		HasSelfLink: g.hasSelfLink,
		VertexCount: g.vertices.len(),
		EdgeCount:   g.edges.pairs(),
		RecordCount: g.edges.records,
		TotalWeight: g.edges.total,
		Density:     density,
	}
}
