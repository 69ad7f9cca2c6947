package bfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state. visited is shared across walks when
// Components partitions the graph.
type walker[K cmp.Ordered] struct {
	graph   *core.Graph[K]
	queue   []queueItem[K]
	visited map[K]bool
	res     *BFSResult[K]
}

// BFS runs breadth-first search on g from start over forward neighbors.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS[K cmp.Ordered](g *core.Graph[K], start K) (*BFSResult[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, make(map[K]bool))
	w.run(start)

	return w.res, nil
}

// Reachable lists the vertices reachable from start in BFS visit order,
// start first.
func Reachable[K cmp.Ordered](g *core.Graph[K], start K) ([]K, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

// Components partitions the vertices of g into connected components by
// iterative BFS. Seeds are taken in vertex insertion order; each component
// lists its vertices in BFS visit order.
func Components[K cmp.Ordered](g *core.Graph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	visited := make(map[K]bool, len(vertices))
	out := make([][]K, 0)
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		w := newWalker(g, visited)
		w.run(v)
		out = append(out, w.res.Order)
	}

	return out, nil
}

func newWalker[K cmp.Ordered](g *core.Graph[K], visited map[K]bool) *walker[K] {
	return &walker[K]{
		graph:   g,
		visited: visited,
		res: &BFSResult[K]{
			Depth:  make(map[K]int),
			Parent: make(map[K]K),
		},
	}
}

// run seeds the queue with start and expands the frontier until it is empty.
func (w *walker[K]) run(start K) {
	w.enqueue(start, 0, nil)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		for _, nbr := range w.graph.Neighbors(item.id) {
			if !w.visited[nbr] {
				parent := item.id
				w.enqueue(nbr, item.depth+1, &parent)
			}
		}
	}
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker[K]) enqueue(id K, d int, parent *K) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}
