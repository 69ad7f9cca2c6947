package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// FindPath returns the first start→end path found by a depth-first walk over
// forward neighbors in insertion order. The path is simple but not
// necessarily shortest. FindPath(g, v, v) is [v].
//
// Returns ErrGraphNil, ErrVertexNotFound if start or end is absent, or
// ErrNoPath.
func FindPath[K cmp.Ordered](g *core.Graph[K], start, end K) ([]K, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	var found []K
	walk(g, start, end, func(p []K) bool {
		found = p
		return false
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, start, end)
	}

	return found, nil
}

// FindAllPaths returns every simple start→end path in depth-first discovery
// order. An unreachable end yields an empty result and no error.
//
// Returns ErrGraphNil or ErrVertexNotFound.
func FindAllPaths[K cmp.Ordered](g *core.Graph[K], start, end K) ([][]K, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	paths := make([][]K, 0)
	walk(g, start, end, func(p []K) bool {
		paths = append(paths, p)
		return true
	})

	return paths, nil
}

func validate[K cmp.Ordered](g *core.Graph[K], start, end K) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, end)
	}
	return nil
}

// walk enumerates simple start→end paths depth-first and hands each one to
// emit; emit returns false to stop. A path never continues past end.
func walk[K cmp.Ordered](g *core.Graph[K], start, end K, emit func([]K) bool) {
	if start == end {
		emit([]K{start})
		return
	}

	st := newPathStack(start, g.Neighbors(start))
	for len(st.frames) > 0 {
		top := &st.frames[len(st.frames)-1]
		if top.next == len(top.nbrs) {
			st.pop()
			continue
		}
		w := top.nbrs[top.next]
		top.next++

		if st.onPath[w] {
			continue
		}
		if w == end {
			if !emit(st.branch(w)) {
				return
			}
			continue
		}
		st.push(w, g.Neighbors(w))
	}
}
