// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_cycle.go - Cycle(n): the simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices idFn(0..n-1); edges {i, (i+1) mod n}.
//
// Complexity: O(n) time and space.
//
// Determinism: edges are emitted in ascending i, the closing edge last.

package builder

import "github.com/katalvlaran/brocs/core"

const methodCycle = "Cycle"

// Cycle returns a Constructor for the cycle on n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids, err := addVertices(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
