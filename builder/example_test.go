package builder_test

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/builder"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	deg, _ := g.Degree("Center")
	fmt.Println(g.Order(), g.Size(), deg)

	// Output:
	// 6 10 5
}

func ExampleRandomSparse() {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, _ := builder.BuildGraph(nil, opts, builder.RandomSparse(10, 0.4))
	b, _ := builder.BuildGraph(nil, opts, builder.RandomSparse(10, 0.4))
	fmt.Println(a.Size() == b.Size())

	// Output:
	// true
}
