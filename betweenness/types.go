package betweenness

import (
	"cmp"
	"errors"
	"sort"

	"github.com/katalvlaran/simplegraph/core"
)

// Sentinel errors returned by Compute.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("betweenness: graph is nil")

	// ErrContradictoryPaths indicates a shorter path to a settled vertex.
	// Dijkstra cannot produce this with non-negative weights.
	ErrContradictoryPaths = errors.New("betweenness: contradictory paths found, negative weights?")
)

// Options configures Compute.
type Options struct {
	// Normalized divides every score by n·(n-1) when n > 1.
	Normalized bool
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithNormalized toggles normalization. Default is true.
func WithNormalized(on bool) Option {
	return func(o *Options) {
		o.Normalized = on
	}
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{Normalized: true}
}

// Result holds betweenness scores for every vertex and every edge.
type Result[K cmp.Ordered] struct {
	// Vertices maps each vertex label to its score.
	Vertices map[K]float64

	// Edges maps each edge, in Graph.Edges orientation, to its score.
	Edges map[core.Pair[K]]float64
}

// Score pairs a key with its betweenness value for ranked output.
type Score[T any] struct {
	Key   T
	Value float64
}

// RankedVertices returns vertex scores sorted by descending value,
// ties broken by ascending label.
func (r *Result[K]) RankedVertices() []Score[K] {
	out := make([]Score[K], 0, len(r.Vertices))
	for k, v := range r.Vertices {
		out = append(out, Score[K]{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// RankedEdges returns edge scores sorted by descending value,
// ties broken by (From, To).
func (r *Result[K]) RankedEdges() []Score[core.Pair[K]] {
	out := make([]Score[core.Pair[K]], 0, len(r.Edges))
	for p, v := range r.Edges {
		out = append(out, Score[core.Pair[K]]{Key: p, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		if out[i].Key.From != out[j].Key.From {
			return out[i].Key.From < out[j].Key.From
		}
		return out[i].Key.To < out[j].Key.To
	})
	return out
}

// queueItem is a heap entry: a tentative distance to v discovered via pred.
// seq is the push counter used as a tie-break.
type queueItem[K cmp.Ordered] struct {
	dist float64
	seq  int
	pred K
	v    K
}

// distPQ is a min-heap of queueItem ordered by (dist, seq).
// Stale entries are skipped when popped (lazy decrease-key).
type distPQ[K cmp.Ordered] []queueItem[K]

func (pq distPQ[K]) Len() int { return len(pq) }

func (pq distPQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq distPQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ[K]) Push(x any) { *pq = append(*pq, x.(queueItem[K])) }

func (pq *distPQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
