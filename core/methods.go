// File: methods.go
// Role: Constructors from edge lists and adjacency mappings.
// Determinism:
//   - Go maps are unordered, so adjacency keys (and inner neighbor keys) are
//     visited in ascending label order. Neighbor slices keep their own order.

package core

import (
	"cmp"
	"slices"
)

// EdgeSpec is one entry of an edge-list initializer.
type EdgeSpec[K cmp.Ordered] struct {
	From  K
	To    K
	Attrs Attrs
}

// FromEdgeList builds a graph by calling AddEdge for each spec in order.
// Returns ErrInvalidInput if an attribute bag is malformed.
func FromEdgeList[K cmp.Ordered](edges []EdgeSpec[K], opts ...GraphOption) (*Graph[K], error) {
	g := NewGraph[K](opts...)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, WithEdgeAttrs(e.Attrs)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromAdjacency builds a graph from vertex → neighbor list. Every key becomes
// a vertex even when its list is empty; edges are added in list order.
//
// Example: FromAdjacency(map[int][]int{0: {1, 2}, 1: {2}}) yields vertices
// [0 1 2] and, in symmetric mode, edges [(0,1) (0,2) (1,2)].
func FromAdjacency[K cmp.Ordered](adj map[K][]K, opts ...GraphOption) *Graph[K] {
	g := NewGraph[K](opts...)
	for _, u := range sortedKeys(adj) {
		// Attribute-free inserts cannot fail.
		_, _ = g.AddVertex(u)
		for _, v := range adj[u] {
			_ = g.AddEdge(u, v)
		}
	}
	return g
}

// FromWeightedAdjacency builds a graph from vertex → (neighbor → attributes).
// Returns ErrInvalidInput if an attribute bag is malformed.
func FromWeightedAdjacency[K cmp.Ordered](adj map[K]map[K]Attrs, opts ...GraphOption) (*Graph[K], error) {
	g := NewGraph[K](opts...)
	for _, u := range sortedKeys(adj) {
		if _, err := g.AddVertex(u); err != nil {
			return nil, err
		}
		inner := adj[u]
		for _, v := range sortedKeys(inner) {
			if err := g.AddEdge(u, v, WithEdgeAttrs(inner[v])); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
