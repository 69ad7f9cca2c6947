// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, ReverseNeighbors, Degree).
// Determinism:
//   - Neighbor lists follow first-link insertion order; an upsert does not move a neighbor.

package core

import "go.uber.org/zap"

// Neighbors returns the forward neighbors of label in insertion order.
// In symmetric mode these are all adjacent vertices; a self-loop lists label
// itself once. A missing label yields nil.
//
// Complexity: O(d).
func (g *Graph[K]) Neighbors(label K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		g.log.Warn("neighbors: vertex not found", zap.Any("label", label))
		return nil
	}
	return g.labelsOf(g.edges.out(id))
}

// ReverseNeighbors returns the vertices u with an edge (u, label), in
// insertion order. A missing label yields nil.
//
// Complexity: O(d).
func (g *Graph[K]) ReverseNeighbors(label K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		g.log.Warn("reverse neighbors: vertex not found", zap.Any("label", label))
		return nil
	}
	return g.labelsOf(g.edges.in(id))
}

// Degree returns |Neighbors(label)| plus one when label has a self-loop, so a
// loop contributes two.
func (g *Graph[K]) Degree(label K) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		return 0, false
	}
	d := len(g.edges.out(id))
	if g.edges.get(id, id) != nil {
		d++
	}
	return d, true
}

// AdjacencyList returns label → forward neighbors for every vertex.
// Complexity: O(V + E).
func (g *Graph[K]) AdjacencyList() map[K][]K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[K][]K, g.vertices.len())
	for _, id := range g.vertices.ids() {
		out[g.labelOf(id)] = g.labelsOf(g.edges.out(id))
	}
	return out
}
