// File: adjacency_list.go
// Role: Insertion-ordered neighbor map used by both adjacency indices.
// Determinism:
//   - keys() preserves first-insertion order; an upsert keeps the original position.

package core

// neighborSet maps a neighbor slot to the shared edge record, remembering the
// order in which neighbors were first linked.
type neighborSet struct {
	keys  []VertexID
	edges map[VertexID]*edgeRecord
}

func newNeighborSet() *neighborSet {
	return &neighborSet{edges: make(map[VertexID]*edgeRecord)}
}

func (n *neighborSet) get(v VertexID) *edgeRecord {
	if n == nil {
		return nil
	}
	return n.edges[v]
}

func (n *neighborSet) set(v VertexID, e *edgeRecord) {
	if _, ok := n.edges[v]; !ok {
		n.keys = append(n.keys, v)
	}
	n.edges[v] = e
}

func (n *neighborSet) delete(v VertexID) {
	if _, ok := n.edges[v]; !ok {
		return
	}
	delete(n.edges, v)
	for i, k := range n.keys {
		if k == v {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			return
		}
	}
}

func (n *neighborSet) len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// snapshot returns a copy of the neighbor slots, safe to range over while
// the set is being modified.
func (n *neighborSet) snapshot() []VertexID {
	if n == nil {
		return nil
	}
	out := make([]VertexID, len(n.keys))
	copy(out, n.keys)
	return out
}

// adjacency is one direction of the index: adjacency[u] holds u's neighbors.
type adjacency map[VertexID]*neighborSet

// link stores e under adj[u][v], creating the inner set on demand.
func (adj adjacency) link(u, v VertexID, e *edgeRecord) {
	set, ok := adj[u]
	if !ok {
		set = newNeighborSet()
		adj[u] = set
	}
	set.set(v, e)
}

// unlink drops adj[u][v] and the inner set once it is empty.
func (adj adjacency) unlink(u, v VertexID) {
	set, ok := adj[u]
	if !ok {
		return
	}
	set.delete(v)
	if set.len() == 0 {
		delete(adj, u)
	}
}
