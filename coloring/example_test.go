package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/brocs/builder"
	"github.com/katalvlaran/brocs/coloring"
)

// ExampleBrooks_ColorGraph colors the shovel: a triangle on a handle of
// three edges. The handle makes vertex "1" a cut vertex.
func ExampleBrooks_ColorGraph() {
	g, err := builder.BuildGraph(nil, builder.Shovel())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := coloring.NewBrooks().ColorGraph(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c, coloring.UniqueColors(c), coloring.IsProper(g, c))
	// Output:
	// [0 1 2 1 0 1 0] 3 true
}

// ExampleConnectedSequential_ColorGraph shows that greedy BFS order needs
// three colors on C_5.
func ExampleConnectedSequential_ColorGraph() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))
	c, _ := coloring.NewConnectedSequential().ColorGraph(g)
	fmt.Println(c)
	// Output:
	// [0 1 0 2 1]
}
