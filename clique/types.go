package clique

import (
	"cmp"
	"errors"
	"slices"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("clique: graph is nil")

// vertexSet is an unordered set of labels. Iteration goes through sorted
// so enumeration order does not depend on map order.
type vertexSet[K cmp.Ordered] map[K]struct{}

func newVertexSet[K cmp.Ordered](items []K) vertexSet[K] {
	s := make(vertexSet[K], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

func (s vertexSet[K]) has(v K) bool {
	_, ok := s[v]
	return ok
}

// intersect returns s ∩ o as a new set.
func (s vertexSet[K]) intersect(o vertexSet[K]) vertexSet[K] {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(vertexSet[K])
	for v := range small {
		if big.has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// countIn returns |s ∩ o| without allocating.
func (s vertexSet[K]) countIn(o vertexSet[K]) int {
	n := 0
	for v := range s {
		if o.has(v) {
			n++
		}
	}
	return n
}

// minus returns s \ o in ascending order.
func (s vertexSet[K]) minus(o vertexSet[K]) []K {
	out := make([]K, 0, len(s))
	for v := range s {
		if !o.has(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

func (s vertexSet[K]) sorted() []K {
	out := make([]K, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// frame saves the enumeration state of one recursion level.
type frame[K cmp.Ordered] struct {
	subg vertexSet[K] // candidates ∪ excluded still compatible with the clique
	cand vertexSet[K] // candidates still allowed to extend the clique
	extU []K          // branch vertices left at this level, ascending
}
