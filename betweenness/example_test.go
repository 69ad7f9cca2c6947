package betweenness_test

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/betweenness"
	"github.com/katalvlaran/simplegraph/core"
)

// ExampleCompute ranks the vertices of a small path by how many shortest
// paths run through them.
func ExampleCompute() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")

	res, _ := betweenness.Compute(g, betweenness.WithNormalized(false))
	for _, s := range res.RankedVertices() {
		fmt.Printf("%s %.1f\n", s.Key, s.Value)
	}
	for _, s := range res.RankedEdges() {
		fmt.Printf("%v %.1f\n", s.Key, s.Value)
	}

	// Output:
	// B 2.0
	// C 2.0
	// A 0.0
	// D 0.0
	// (B,C) 4.0
	// (A,B) 3.0
	// (C,D) 3.0
}
