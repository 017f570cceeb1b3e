// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_fixtures.go - hand-drawn evaluation fixtures: Fence, House, Shovel.
//
// Edge lists use zero-based indices into idFn; WithOneBasedIDs reproduces
// the paper numbering.
//
//   • Fence:  11 vertices, a tree: rails 0..4 and 5..9 joined through 10
//             at vertices 2 and 7.
//   • House:  5 vertices, a square 0-1-2-3 with both diagonals and a roof 4
//             on 2 and 3; Δ = 4, χ = 4 (0,1,2,3 form a K_4).
//   • Shovel: 7 vertices, a handle 0-1-2 ending in the 5-cycle 2..6.

package builder

import "github.com/katalvlaran/brocs/core"

const (
	methodFence  = "Fence"
	methodHouse  = "House"
	methodShovel = "Shovel"
)

var (
	fenceEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {2, 10},
		{10, 7}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	}
	houseEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4},
		{0, 2}, {0, 3}, {1, 3}, {2, 4},
	}
	shovelEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 2},
	}
)

// Fence returns a Constructor for the fence tree.
func Fence() Constructor { return fixture(methodFence, 11, fenceEdges) }

// House returns a Constructor for the house graph with a filled square.
func House() Constructor { return fixture(methodHouse, 5, houseEdges) }

// Shovel returns a Constructor for the shovel: a path glued to a 5-cycle.
func Shovel() Constructor { return fixture(methodShovel, 7, shovelEdges) }

func fixture(method string, n int, edges [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, method, 0, n)
		if err != nil {
			return err
		}

		return addEdges(g, method, ids, edges)
	}
}
