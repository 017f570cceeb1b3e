// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_path.go - Path(n): the path P_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices idFn(0..n-1); edges {i, i+1} for i = 0..n-2.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/brocs/core"

const methodPath = "Path"

// Path returns a Constructor for the path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addVertices(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
