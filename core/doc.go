// Package core provides the in-memory labelled Graph used by every other
// simplegraph package.
//
// A Graph[K] stores vertices keyed by a user label of any ordered type K and
// edges keyed by ordered label pairs. Each vertex and edge carries a float64
// weight plus an open-ended attribute bag (Attrs). Internally the graph is split
// in two stores:
//
//   - vertexStore: an arena of vertex records addressed by a stable VertexID.
//     Removed slots go on a free list and are recycled by later inserts. The
//     label→VertexID map is kept separately from the arena.
//   - edgeStore: forward and reverse neighbor indices over VertexIDs, plus
//     running weight aggregates (graph total and per-vertex incoming weight)
//     maintained incrementally on every mutation.
//
// Orientation:
//
//	– WithDirected(false) (default, "symmetric")
//	    AddEdge(u, v) writes two records, (u,v) and (v,u), sharing weight and
//	    label. A self-loop (u,u) is stored once.
//	– WithDirected(true)
//	    AddEdge(u, v) writes only (u,v).
//
// Index invariant: for every forward entry forward[u][v] = e the reverse index
// holds reverse[v][u] = e (the same record). It holds after every insert,
// update, edge removal and cascading vertex removal.
//
// Weight rules:
//
//   - A zero (unset) weight is coerced to DefaultWeight (1.0), for both
//     vertices and edges.
//   - AddVertex on an existing label is a no-op: the first weight and
//     attributes win.
//   - AddEdge on an existing pair is an upsert: weight and label are updated in
//     place and aggregates move by the delta only.
//
// Quirks kept on purpose:
//
//   - HasSelfLink() is sticky. It becomes true the first time a self-loop is
//     added and is never reset, even when that loop is later removed. Density()
//     switches to the V² denominator from then on.
//
// Errors:
//
//	ErrVertexNotFound – AddEdge with WithExistingEndpoints and a missing endpoint
//	ErrInvalidInput   – malformed attribute bag or structured initializer
//
// Lookups of missing entities are not errors: they return (zero, false) and are
// logged at Warn level on the logger passed through WithLogger.
//
// Concurrency: every mutation takes the graph's write lock; queries take the
// read lock. Algorithms in dfs, bfs, betweenness and clique only call the
// read-only query methods and must not run concurrently with mutations.
package core
