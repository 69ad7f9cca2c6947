// File: methods_vertices.go
// Role: Label-based vertex lifecycle and lookup on the Graph facade.
// Concurrency:
//   - Mutations hold the write lock; lookups hold the read lock.

package core

import "go.uber.org/zap"

// AddVertex inserts label with the given weight and attributes and returns its
// VertexID. Re-adding an existing label is a no-op that returns the existing
// ID: the first weight and attributes win.
//
// Returns ErrInvalidInput if an option carries a malformed attribute.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(label K, opts ...VertexOption) (VertexID, error) {
	cfg := vertexConfig{attrs: make(Attrs)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id, created := g.vertices.add(label, cfg.weight, cfg.attrs)
	if !created {
		g.log.Debug("vertex already exists", zap.Any("label", label))
	}

	return id, nil
}

// RemoveVertex deletes label and every incident edge: outgoing, incoming and
// self-loops. Removing a missing label is a logged no-op that returns false.
//
// Complexity: O(deg(v)·d) where d bounds the neighbor-list scans.
func (g *Graph[K]) RemoveVertex(label K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		g.log.Warn("remove: vertex not found", zap.Any("label", label))
		return false
	}
	g.edges.purge(id)
	g.vertices.remove(label)

	return true
}

// HasVertex reports whether label is present.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(label K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices.lookup(label)
	return ok
}

// ID returns the arena slot currently holding label.
func (g *Graph[K]) ID(label K) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.lookup(label)
}

// Vertex returns a copy of the record for label.
// A missing label yields (zero, false) and a Warn log entry.
func (g *Graph[K]) Vertex(label K) (Vertex[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		g.log.Warn("vertex not found", zap.Any("label", label))
		return Vertex[K]{}, false
	}
	rec := g.vertices.at(id)

	return Vertex[K]{Label: rec.label, Weight: rec.weight, Attrs: rec.attrs.Clone()}, true
}

// VertexWeight returns the stored weight of label.
func (g *Graph[K]) VertexWeight(label K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.vertices.lookup(label)
	if !ok {
		return 0, false
	}
	return g.vertices.at(id).weight, true
}

// Vertices returns all labels in insertion order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.labels()
}

// Order returns the number of vertices.
func (g *Graph[K]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.len()
}

// labelOf maps a live slot back to its label. Caller holds a lock.
func (g *Graph[K]) labelOf(id VertexID) K {
	return g.vertices.at(id).label
}

// labelsOf maps slots to labels. Caller holds a lock.
func (g *Graph[K]) labelsOf(ids []VertexID) []K {
	out := make([]K, len(ids))
	for i, id := range ids {
		out[i] = g.labelOf(id)
	}
	return out
}
