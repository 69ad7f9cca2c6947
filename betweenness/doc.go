// Package betweenness computes weighted shortest-path betweenness centrality
// for vertices and edges of a core.Graph using Brandes' algorithm.
//
// For every vertex s taken as a source, a Dijkstra expansion builds the
// shortest-path DAG rooted at s. It tracks, for each reached vertex w:
//
//   - D[w]      the settled shortest distance from s,
//   - sigma[w]  the number of shortest s→w paths,
//   - P[w]      every predecessor attaining D[w] (ties included).
//
// The priority queue is keyed by (distance, push counter), so equal distances
// settle in push order. Vertices are then revisited in reverse settling
// order and each w hands (1+δ[w])·sigma[v]/sigma[w] to every predecessor
// edge (v,w) and to δ[v]. Vertex betweenness accumulates δ[w] for w ≠ s.
//
// Edge scores are keyed by core.Pair in the orientation reported by
// Graph.Edges: on an undirected graph each edge has exactly one entry,
// whichever direction the traversal used.
//
// Scaling after all sources are summed:
//
//   - 1/(n·(n-1))  normalized, n > 1 (default)
//   - 0.5          unnormalized undirected graph (each path seen from both ends)
//   - 1            otherwise
//
// Complexity:
//
//   - Time:   O(V·(V+E)·log V)
//   - Memory: O(V+E)
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrContradictoryPaths  a strictly shorter path reached an already
//     settled vertex, which only happens with negative edge weights
package betweenness
