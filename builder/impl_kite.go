// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_kite.go - Kite, TwinKite, DoubleTwinKite.
//
// A kite (the diamond, K_4 minus an edge) on idFn(0..3) has edges
// 0-1, 0-2, 1-2, 1-3, 2-3; 0 and 3 are its tips.
//
//   • Kite():           4 vertices, 5 edges, Δ = 3, 2-connected.
//   • TwinKite():       two kites glued at a tip (vertex 3), 7 vertices,
//                       10 edges, Δ = 4, one cut vertex.
//   • DoubleTwinKite(): two kites 0..3 and 4..7 joined tip to tip by 3-4
//                       and 7-0, 8 vertices, 12 edges, 3-regular and
//                       2-connected.
//
// These are the smallest inputs that walk the colorer through the
// one-connected split and the two-connected sequence construction.
//
// Complexity: O(1).

package builder

import "github.com/katalvlaran/brocs/core"

const (
	methodKite           = "Kite"
	methodTwinKite       = "TwinKite"
	methodDoubleTwinKite = "DoubleTwinKite"
	kiteSize             = 4
)

// kiteEdges is the diamond with tips 0 and 3.
var kiteEdges = [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}

// Kite returns a Constructor for the diamond graph.
func Kite() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, methodKite, 0, kiteSize)
		if err != nil {
			return err
		}

		return addEdges(g, methodKite, ids, kiteEdges)
	}
}

// TwinKite returns a Constructor for two kites sharing the tip idFn(3).
func TwinKite() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, methodTwinKite, 0, 2*kiteSize-1)
		if err != nil {
			return err
		}
		if err = addEdges(g, methodTwinKite, ids, kiteEdges); err != nil {
			return err
		}

		return addEdges(g, methodTwinKite, ids, shift(kiteEdges, kiteSize-1))
	}
}

// DoubleTwinKite returns a Constructor for two kites closed into a ring
// through their tips.
func DoubleTwinKite() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, methodDoubleTwinKite, 0, 2*kiteSize)
		if err != nil {
			return err
		}
		if err = addEdges(g, methodDoubleTwinKite, ids, kiteEdges); err != nil {
			return err
		}
		if err = addEdges(g, methodDoubleTwinKite, ids, shift(kiteEdges, kiteSize)); err != nil {
			return err
		}

		return addEdges(g, methodDoubleTwinKite, ids, [][2]int{{3, 4}, {7, 0}})
	}
}

func shift(pairs [][2]int, by int) [][2]int {
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{p[0] + by, p[1] + by}
	}

	return out
}
