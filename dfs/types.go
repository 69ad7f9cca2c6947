package dfs

import (
	"errors"
	"math"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that start or end is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrNoPath indicates that end is not reachable from start.
	ErrNoPath = errors.New("dfs: no path")
)

// Infinity is the Diameter of a graph that is not connected.
const Infinity = math.MaxInt

// frame is one level of the explicit DFS stack: the vertex being expanded,
// its neighbor snapshot and the index of the next neighbor to try.
type frame[K comparable] struct {
	vertex K
	nbrs   []K
	next   int
}

// pathStack tracks the current branch so membership checks are O(1).
type pathStack[K comparable] struct {
	frames []frame[K]
	path   []K
	onPath map[K]bool
}

func newPathStack[K comparable](start K, nbrs []K) *pathStack[K] {
	return &pathStack[K]{
		frames: []frame[K]{{vertex: start, nbrs: nbrs}},
		path:   []K{start},
		onPath: map[K]bool{start: true},
	}
}

func (s *pathStack[K]) push(v K, nbrs []K) {
	s.frames = append(s.frames, frame[K]{vertex: v, nbrs: nbrs})
	s.path = append(s.path, v)
	s.onPath[v] = true
}

func (s *pathStack[K]) pop() {
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.path = s.path[:len(s.path)-1]
	delete(s.onPath, top.vertex)
}

// branch returns a copy of the current path extended by v.
func (s *pathStack[K]) branch(v K) []K {
	out := make([]K, len(s.path)+1)
	copy(out, s.path)
	out[len(s.path)] = v
	return out
}
