// File: methods_clone.go
// Role: Structured snapshot (to_dict form), reconstruction, cloning and clearing.
// Determinism:
//   - Snapshot lists vertices in insertion order and edges in Edges() order.

package core

import (
	"cmp"
	"fmt"
)

// VertexEntry is one vertex of a Snapshot: its label and every non-identity
// field, weight included.
type VertexEntry[K cmp.Ordered] struct {
	Label K
	Attrs Attrs
}

// EdgeEntry is one edge of a Snapshot: its endpoints and every non-identity
// field, weight and label included.
type EdgeEntry[K cmp.Ordered] struct {
	From  K
	To    K
	Attrs Attrs
}

// Snapshot is the structured {V, E} form of a graph.
type Snapshot[K cmp.Ordered] struct {
	Directed bool
	V        []VertexEntry[K]
	E        []EdgeEntry[K]
}

// Snapshot returns the structured form of g. Rebuilding it with FromSnapshot
// yields a graph with the same Snapshot.
// Complexity: O(V + E).
func (g *Graph[K]) Snapshot() Snapshot[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot[K]{
		Directed: g.directed,
		V:        make([]VertexEntry[K], 0, g.vertices.len()),
	}
	for _, id := range g.vertices.ids() {
		rec := g.vertices.at(id)
		attrs := rec.attrs.Clone()
		attrs[AttrWeight] = Number(rec.weight)
		snap.V = append(snap.V, VertexEntry[K]{Label: rec.label, Attrs: attrs})
	}

	recs := g.distinctRecords()
	snap.E = make([]EdgeEntry[K], 0, len(recs))
	for _, e := range recs {
		attrs := e.attrs.Clone()
		attrs[AttrWeight] = Number(e.weight)
		if e.label != "" {
			attrs[AttrLabel] = String(e.label)
		}
		snap.E = append(snap.E, EdgeEntry[K]{From: g.labelOf(e.from), To: g.labelOf(e.to), Attrs: attrs})
	}

	return snap
}

// FromSnapshot builds a graph from its structured form. The orientation is
// taken from snap.Directed; opts may add a logger (a WithDirected option in
// opts is overridden).
//
// Returns ErrInvalidInput, wrapped with the offending entry, when an attribute
// bag is malformed.
func FromSnapshot[K cmp.Ordered](snap Snapshot[K], opts ...GraphOption) (*Graph[K], error) {
	all := make([]GraphOption, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithDirected(snap.Directed))
	g := NewGraph[K](all...)
	for i, v := range snap.V {
		if _, err := g.AddVertex(v.Label, WithVertexAttrs(v.Attrs)); err != nil {
			return nil, fmt.Errorf("vertex #%d (%v): %w", i, v.Label, err)
		}
	}
	for i, e := range snap.E {
		if err := g.AddEdge(e.From, e.To, WithEdgeAttrs(e.Attrs)); err != nil {
			return nil, fmt.Errorf("edge #%d (%v,%v): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Clone returns a deep copy of g: orientation, logger, the sticky self-link
// flag, vertices and edges. VertexIDs are reassigned densely.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	snap := g.Snapshot()

	g.mu.RLock()
	logger, selfLink := g.log, g.hasSelfLink
	g.mu.RUnlock()

	// A snapshot taken from a live graph always holds well-formed attributes.
	clone, err := FromSnapshot(snap, WithLogger(logger))
	if err != nil {
		panic(fmt.Sprintf("core: clone of a consistent graph failed: %v", err))
	}
	clone.hasSelfLink = clone.hasSelfLink || selfLink

	return clone
}

// Clear drops every vertex and edge. Orientation, logger and the sticky
// self-link flag are kept.
// Complexity: O(1).
func (g *Graph[K]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices.reset()
	g.edges.reset()
}
