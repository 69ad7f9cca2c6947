package clique_test

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/clique"
	"github.com/katalvlaran/simplegraph/core"
)

func ExampleFindCliques() {
	g := core.NewGraph[int]()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {3, 4}, {4, 5}} {
		_ = g.AddEdge(e[0], e[1])
	}

	cliques, _ := clique.FindCliques(g)
	for _, c := range cliques {
		fmt.Println(c)
	}
	best, _ := clique.MaxClique(g)
	fmt.Println("max:", best)

	// Output:
	// [1 2 3 4]
	// [1 4 5]
	// max: [1 2 3 4]
}
