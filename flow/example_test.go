package flow_test

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
	"github.com/katalvlaran/brocs/flow"
)

// ExampleDinic computes a maximum flow through a diamond network.
func ExampleDinic() {
	net := flow.NewNetwork()
	_ = net.AddArc("s", "a", 3)
	_ = net.AddArc("s", "b", 2)
	_ = net.AddArc("a", "t", 2)
	_ = net.AddArc("b", "t", 3)
	_ = net.AddArc("a", "b", 1)

	mf, _, err := flow.Dinic(net, "s", "t", flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mf)
	// Output:
	// 5
}

// ExampleMinVertexCut finds the hinge of a graph made of two squares
// sharing one vertex.
func ExampleMinVertexCut() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "h"}, {"h", "c"}, {"c", "a"},
		{"h", "x"}, {"x", "y"}, {"y", "z"}, {"z", "h"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	cut, err := flow.MinVertexCut(g, flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cut)
	// Output:
	// [h]
}
