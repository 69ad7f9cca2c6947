// File: edge_store.go
// Role: Edge records, forward/reverse adjacency indices and weight aggregates.
// Invariants:
//   - forward[u][v] == e  ⇔  reverse[v][u] == e (same record).
//   - total == Σ record weights; incoming[v] == Σ weights of records (·, v).
//   - Symmetric mode keeps (u,v) and (v,u) as two records with equal weight
//     and label; a self-loop (u,u) is a single record.

package core

// edgeRecord is the stored form of one directed edge entry.
type edgeRecord struct {
	from, to VertexID
	weight   float64
	label    string
	attrs    Attrs
}

// edgeStore owns all edge records and the aggregates derived from them.
type edgeStore struct {
	symmetric bool

	forward adjacency
	reverse adjacency

	records  int
	loops    int
	total    float64
	incoming map[VertexID]float64
}

func newEdgeStore(symmetric bool) edgeStore {
	return edgeStore{
		symmetric: symmetric,
		forward:   make(adjacency),
		reverse:   make(adjacency),
		incoming:  make(map[VertexID]float64),
	}
}

// get returns the record (u,v) or nil.
func (s *edgeStore) get(u, v VertexID) *edgeRecord {
	return s.forward[u].get(v)
}

// put upserts (u,v) and, in symmetric mode, its mirror (v,u).
// It reports whether the pair was newly created.
func (s *edgeStore) put(u, v VertexID, weight float64, label string, labelSet bool, attrs Attrs) bool {
	created := s.upsert(u, v, weight, label, labelSet, attrs)
	if s.symmetric && u != v {
		s.upsert(v, u, weight, label, labelSet, attrs)
	}
	return created
}

// upsert writes a single record and moves the aggregates by the weight delta.
func (s *edgeStore) upsert(u, v VertexID, weight float64, label string, labelSet bool, attrs Attrs) bool {
	if e := s.get(u, v); e != nil {
		delta := weight - e.weight
		e.weight = weight
		if labelSet {
			e.label = label
		}
		e.attrs.merge(attrs)
		s.total += delta
		s.incoming[v] += delta
		return false
	}

	e := &edgeRecord{from: u, to: v, weight: weight, label: label, attrs: attrs.Clone()}
	s.forward.link(u, v, e)
	s.reverse.link(v, u, e)
	s.records++
	if u == v {
		s.loops++
	}
	s.total += weight
	s.incoming[v] += weight

	return true
}

// del removes (u,v) and, in symmetric mode, (v,u). It reports whether
// anything was removed.
func (s *edgeStore) del(u, v VertexID) bool {
	removed := s.drop(u, v)
	if s.symmetric && u != v {
		s.drop(v, u)
	}
	return removed
}

// drop removes one record from both indices and the aggregates.
func (s *edgeStore) drop(u, v VertexID) bool {
	e := s.get(u, v)
	if e == nil {
		return false
	}
	s.forward.unlink(u, v)
	s.reverse.unlink(v, u)
	s.records--
	if u == v {
		s.loops--
	}
	s.total -= e.weight
	s.incoming[v] -= e.weight

	return true
}

// purge removes every record with x at either end, then x's index entries
// and aggregate.
func (s *edgeStore) purge(x VertexID) {
	for _, v := range s.forward[x].snapshot() {
		s.drop(x, v)
	}
	for _, u := range s.reverse[x].snapshot() {
		s.drop(u, x)
	}
	delete(s.forward, x)
	delete(s.reverse, x)
	delete(s.incoming, x)
}

// out returns the forward neighbors of u in insertion order (shared slice).
func (s *edgeStore) out(u VertexID) []VertexID {
	if set, ok := s.forward[u]; ok {
		return set.keys
	}
	return nil
}

// in returns the reverse neighbors of u in insertion order (shared slice).
func (s *edgeStore) in(u VertexID) []VertexID {
	if set, ok := s.reverse[u]; ok {
		return set.keys
	}
	return nil
}

// pairs returns the number of distinct edges as a user sees them: every record
// in asymmetric mode, mirrored record pairs counted once in symmetric mode.
func (s *edgeStore) pairs() int {
	if !s.symmetric {
		return s.records
	}
	return (s.records-s.loops)/2 + s.loops
}

func (s *edgeStore) reset() {
	*s = newEdgeStore(s.symmetric)
}
