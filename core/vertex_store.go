// File: vertex_store.go
// Role: Arena of vertex records with free-list slot reuse and label lookup.
// Determinism:
//   - labels() returns labels in insertion order; a re-added label goes last.

package core

import "cmp"

// vertexRecord is the stored form of a vertex.
type vertexRecord[K cmp.Ordered] struct {
	label  K
	weight float64
	attrs  Attrs
}

// vertexStore owns vertex records. slots[id] is nil for a free slot.
type vertexStore[K cmp.Ordered] struct {
	slots []*vertexRecord[K]
	free  []VertexID
	index map[K]VertexID
	order []VertexID
}

func newVertexStore[K cmp.Ordered]() vertexStore[K] {
	return vertexStore[K]{index: make(map[K]VertexID)}
}

// lookup maps a label to its slot.
func (s *vertexStore[K]) lookup(label K) (VertexID, bool) {
	id, ok := s.index[label]
	return id, ok
}

// at returns the record in slot id, or nil if the slot is free or out of range.
func (s *vertexStore[K]) at(id VertexID) *vertexRecord[K] {
	if id < 0 || int(id) >= len(s.slots) {
		return nil
	}
	return s.slots[id]
}

// add stores a new record unless label already exists. created is false for
// an existing label, whose record is left untouched.
func (s *vertexStore[K]) add(label K, weight float64, attrs Attrs) (id VertexID, created bool) {
	if id, ok := s.index[label]; ok {
		return id, false
	}
	rec := &vertexRecord[K]{label: label, weight: coerceWeight(weight), attrs: attrs}
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[id] = rec
	} else {
		id = VertexID(len(s.slots))
		s.slots = append(s.slots, rec)
	}
	s.index[label] = id
	s.order = append(s.order, id)

	return id, true
}

// remove frees the slot of label and returns it.
func (s *vertexStore[K]) remove(label K) (VertexID, bool) {
	id, ok := s.index[label]
	if !ok {
		return 0, false
	}
	delete(s.index, label)
	s.slots[id] = nil
	s.free = append(s.free, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return id, true
}

// len returns the number of live vertices.
func (s *vertexStore[K]) len() int { return len(s.order) }

// ids returns live slots in insertion order. The slice is shared; callers must not modify it.
func (s *vertexStore[K]) ids() []VertexID { return s.order }

// labels returns live labels in insertion order.
func (s *vertexStore[K]) labels() []K {
	out := make([]K, len(s.order))
	for i, id := range s.order {
		out[i] = s.slots[id].label
	}
	return out
}

// reset drops all records.
func (s *vertexStore[K]) reset() {
	*s = newVertexStore[K]()
}
