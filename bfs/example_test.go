package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleConnectedWithout checks whether a graph survives removing a pair.
func ExampleConnectedWithout() {
	// a bowtie: two triangles sharing "m"
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "m")
	_ = g.AddEdge("m", "a")
	_ = g.AddEdge("m", "c")
	_ = g.AddEdge("c", "d")
	_ = g.AddEdge("d", "m")

	ok1, _ := bfs.ConnectedWithout(g, "a", "c")
	ok2, _ := bfs.ConnectedWithout(g, "m")
	fmt.Println(ok1, ok2)
	// Output:
	// true false
}
