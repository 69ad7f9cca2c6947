// Package simplegraph is an in-memory toolkit for building weighted graphs,
// loading them from simple text files and analysing their structure.
//
// 🚀 What is in the box?
//
//	A thread-safe, generic graph store plus a handful of focused analyses:
//		• Core primitives: labelled vertices, weighted and attributed edges,
//		  directed or symmetric storage, snapshots and clones
//		• Traversals: BFS layers and components, DFS paths and connectivity
//		• Centrality: weighted edge and vertex betweenness
//		• Cliques: deterministic maximal-clique enumeration
//		• I/O: the #V / #E line format and YAML snapshots
//		• Generators: paths, cycles, stars, wheels, grids, K_n, K_{n,m}, G(n,p)
//
// Everything is organised as subpackages:
//
//	core/          Graph[K], Vertex, Edge, attributes, snapshots
//	bfs/           breadth-first walks, Components, Reachable
//	dfs/           FindPath, FindAllPaths, IsConnected, FindIsolated, Diameter
//	betweenness/   Compute, EdgeBetweenness, VertexBetweenness
//	clique/        FindCliques, MaxClique
//	loader/        Load/Dump for text files, Encode/DecodeSnapshot for YAML
//	builder/       BuildGraph with composable topology constructors
//	cmd/graphstat  command-line front end over all of the above
//
// Quick example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("A", "C")
//	_ = g.AddEdge("A", "D")
//	_ = g.AddEdge("B", "D")
//	_ = g.AddEdge("C", "D")
//	cliques, _ := clique.FindCliques(g) // [[A B D] [A C D]]
//
//	go install github.com/katalvlaran/simplegraph/cmd/graphstat@latest
package simplegraph
