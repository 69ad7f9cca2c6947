// File: methods_edges.go
// Role: Label-based edge lifecycle, lookup and listing on the Graph facade.
// Determinism:
//   - Edges() walks vertices in insertion order and each forward neighbor list
//     in insertion order; symmetric graphs report each mirrored pair once, in
//     the orientation met first.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

// AddEdge upserts the edge (u, v).
//
// Missing endpoints are created with default weight unless
// WithExistingEndpoints is given, in which case ErrVertexNotFound is returned
// and nothing is mutated. On an existing pair the weight is replaced, the
// label is replaced only when supplied, attributes are merged, and the
// aggregates move by the weight difference. In symmetric mode the mirror
// record (v, u) receives the same update.
//
// Returns ErrInvalidInput or ErrVertexNotFound.
// Complexity: O(1) amortized for a new pair.
func (g *Graph[K]) AddEdge(u, v K, opts ...EdgeOption) error {
	cfg := edgeConfig{attrs: make(Attrs)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	uid, uok := g.vertices.lookup(u)
	vid, vok := g.vertices.lookup(v)
	if cfg.existingOnly && (!uok || !vok) {
		missing := u
		if uok {
			missing = v
		}
		g.log.Warn("add edge: endpoint missing", zap.Any("from", u), zap.Any("to", v))
		return fmt.Errorf("%w: %v", ErrVertexNotFound, missing)
	}
	if !uok {
		uid, _ = g.vertices.add(u, DefaultWeight, make(Attrs))
	}
	if !vok {
		vid, _ = g.vertices.add(v, DefaultWeight, make(Attrs))
	}
	if uid == vid {
		g.hasSelfLink = true
	}

	if !g.edges.put(uid, vid, coerceWeight(cfg.weight), cfg.label, cfg.labelSet, cfg.attrs) {
		g.log.Debug("edge updated", zap.Any("from", u), zap.Any("to", v))
	}

	return nil
}

// RemoveEdge deletes (u, v) and, in symmetric mode, (v, u).
// Removing a missing edge is a no-op that returns false.
// Complexity: O(d) for the neighbor-list splice.
func (g *Graph[K]) RemoveEdge(u, v K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	uid, uok := g.vertices.lookup(u)
	vid, vok := g.vertices.lookup(v)
	if !uok || !vok || !g.edges.del(uid, vid) {
		g.log.Warn("remove: edge not found", zap.Any("from", u), zap.Any("to", v))
		return false
	}

	return true
}

// HasEdge reports whether the record (u, v) exists.
func (g *Graph[K]) HasEdge(u, v K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.record(u, v) != nil
}

// Edge returns a copy of the record (u, v).
// A missing edge yields (zero, false) and a Warn log entry.
func (g *Graph[K]) Edge(u, v K) (Edge[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.record(u, v)
	if e == nil {
		g.log.Warn("edge not found", zap.Any("from", u), zap.Any("to", v))
		return Edge[K]{}, false
	}

	return g.export(e), true
}

// EdgeWeight returns the weight of (u, v).
func (g *Graph[K]) EdgeWeight(u, v K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e := g.record(u, v)
	if e == nil {
		return 0, false
	}
	return e.weight, true
}

// Edges returns every edge as a label pair. Symmetric graphs list each
// mirrored pair once.
// Complexity: O(V + E).
func (g *Graph[K]) Edges() []Pair[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	recs := g.distinctRecords()
	out := make([]Pair[K], len(recs))
	for i, e := range recs {
		out[i] = Pair[K]{From: g.labelOf(e.from), To: g.labelOf(e.to)}
	}
	return out
}

// EdgeRecords returns copies of the records listed by Edges, in the same order.
func (g *Graph[K]) EdgeRecords() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	recs := g.distinctRecords()
	out := make([]Edge[K], len(recs))
	for i, e := range recs {
		out[i] = g.export(e)
	}
	return out
}

// Size returns the number of edges reported by Edges.
// Complexity: O(1).
func (g *Graph[K]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.pairs()
}

// record resolves (u, v) to its stored record. Caller holds a lock.
func (g *Graph[K]) record(u, v K) *edgeRecord {
	uid, ok := g.vertices.lookup(u)
	if !ok {
		return nil
	}
	vid, ok := g.vertices.lookup(v)
	if !ok {
		return nil
	}
	return g.edges.get(uid, vid)
}

// distinctRecords lists records in vertex/neighbor insertion order, skipping
// the mirror of an already listed pair in symmetric mode. Caller holds a lock.
func (g *Graph[K]) distinctRecords() []*edgeRecord {
	out := make([]*edgeRecord, 0, g.edges.pairs())
	var seen map[[2]VertexID]struct{}
	if g.edges.symmetric {
		seen = make(map[[2]VertexID]struct{}, g.edges.pairs())
	}
	for _, u := range g.vertices.ids() {
		for _, v := range g.edges.out(u) {
			if seen != nil {
				if _, dup := seen[[2]VertexID{v, u}]; dup {
					continue
				}
				seen[[2]VertexID{u, v}] = struct{}{}
			}
			out = append(out, g.edges.get(u, v))
		}
	}
	return out
}

// export copies a record into the public Edge form. Caller holds a lock.
func (g *Graph[K]) export(e *edgeRecord) Edge[K] {
	return Edge[K]{
		From:   g.labelOf(e.from),
		To:     g.labelOf(e.to),
		Weight: e.weight,
		Label:  e.label,
		Attrs:  e.attrs.Clone(),
	}
}
