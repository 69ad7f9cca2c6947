// Package dfs implements depth-first path search over a core.Graph:
// single-path and all-paths queries, reachability-based connectivity,
// exhaustive diameter and isolated-vertex detection.
//
// What:
//
//   - FindPath: the first start→end path met by a depth-first walk that visits
//     neighbors in the graph's insertion order. Any path, not the shortest.
//   - FindAllPaths: every simple path (no repeated vertex) from start to end,
//     in depth-first discovery order. Exponential in the worst case.
//   - IsConnected: whether every vertex is reachable from the first vertex
//     along forward edges. On a directed graph this is one-way reachability
//     from that vertex, not strong or weak connectivity.
//   - Diameter: for every unordered vertex pair, the shortest of all simple
//     paths between them (by vertex count); the maximum of those lengths
//     minus one. Infinity when the graph is not connected.
//   - FindIsolated: vertices with no neighbors in either direction.
//
// How:
//
// All searches run on an explicit stack of frames
// (vertex, neighbor list, next index) instead of recursion, so very long
// chains cannot exhaust the goroutine stack; the visiting order is exactly
// that of the recursive formulation.
//
// Complexity:
//
//   - FindPath, FindAllPaths: O(number of simple paths explored · V) time,
//     O(V) memory besides the result.
//   - IsConnected, FindIsolated: O(V+E).
//   - Diameter: O(V²) FindAllPaths calls.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrVertexNotFound  start or end vertex is absent
//   - ErrNoPath          no start→end path exists (FindPath only)
package dfs
