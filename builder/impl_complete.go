// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_complete.go - Complete(n): the clique K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Every pair {i,j}, i < j, becomes an edge.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import "github.com/katalvlaran/brocs/core"

const methodComplete = "Complete"

// Complete returns a Constructor for the complete graph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}

		return clique(g, methodComplete, ids)
	}
}

// clique joins every pair of ids.
func clique(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
