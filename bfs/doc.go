// Package bfs provides breadth-first search over a core.Graph and the
// connected-component partition built on it.
//
// What:
//
//   - BFS: layer-by-layer expansion from a start vertex over forward
//     neighbors, recording visit order, hop depth and BFS-tree parents.
//   - Reachable: the BFS visit order alone.
//   - Components: partitions all vertices by repeated BFS from the first
//     unvisited vertex (insertion order). Components are returned in
//     discovery order, each listing its vertices in BFS visit order.
//
// On directed graphs only forward edges are followed, so a "component" is
// the set of not-yet-assigned vertices reachable from its seed.
//
// Complexity:
//
//   - BFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
package bfs
