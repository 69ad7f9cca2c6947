package bfs

import (
	"cmp"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start label is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// BFSResult holds the outcome of a single breadth-first search.
type BFSResult[K cmp.Ordered] struct {
	// Order lists vertices in the order they were dequeued.
	Order []K

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[K]int

	// Parent maps each reached vertex except the start to its BFS-tree parent.
	Parent map[K]K
}

// PathTo rebuilds the start→dest hop path from Parent links.
// ok is false if dest was not reached.
func (r *BFSResult[K]) PathTo(dest K) (path []K, ok bool) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		p, has := r.Parent[cur]
		if !has {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
