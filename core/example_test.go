package core_test

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a symmetric graph; AddEdge auto-adds vertices.
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", core.WithEdgeWeight(2))
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	// 2) Inspect vertices, edges and the running weight total.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.Edges())
	fmt.Println("Total weight:", g.TotalEdgeWeight())

	// 3) Remove a vertex and its edges.
	g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edges: [(A,B) (A,C) (B,C)]
	// Total weight: 8
	// After removing B: [A C] false
}

// ExampleFromAdjacency builds a graph from a neighbor mapping.
func ExampleFromAdjacency() {
	g := core.FromAdjacency(map[int][]int{0: {1, 2}, 1: {2}})
	fmt.Println(g.Vertices(), g.Edges())
	fmt.Println(g.TotalEdgeWeight(), g.VertexEdgeWeight(1))

	// Output:
	// [0 1 2] [(0,1) (0,2) (1,2)]
	// 6 2
}

// ExampleGraph_Snapshot shows the structured {V, E} form.
func ExampleGraph_Snapshot() {
	g := core.NewGraph[string](core.WithDirected(true))
	_ = g.AddEdge("x", "y", core.WithEdgeWeight(4), core.WithEdgeLabel("road"))

	snap := g.Snapshot()
	for _, v := range snap.V {
		fmt.Println("V", v.Label, v.Attrs["weight"])
	}
	for _, e := range snap.E {
		fmt.Println("E", e.From, e.To, e.Attrs["weight"], e.Attrs["label"])
	}

	// Output:
	// V x 1
	// V y 1
	// E x y 4 road
}
