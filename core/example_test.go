package core_test

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge auto-adds vertices in argument order.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// After removing B: [A C] 1
}

// ExampleNewIndex shows the dense relabeling used by the colorers.
func ExampleNewIndex() {
	g := core.NewGraph()
	_ = g.AddEdge("hub", "x")
	_ = g.AddEdge("hub", "y")

	idx := core.NewIndex(g)
	fmt.Println(idx.Pos("y"), idx.ID(0))
	fmt.Println(idx.Adjacency(g))

	// Output:
	// 2 hub
	// [[1 2] [0] [0]]
}
