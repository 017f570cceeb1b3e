// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_caveman.go - ConnectedCaveman(cliques, size).
//
// Contract:
//   • cliques ≥ 2 and size ≥ 3 (else ErrTooFewVertices).
//   • Vertices idFn(0..cliques·size-1); clique c holds c·size..c·size+size-1.
//   • In every clique starting at s the edge {s, s+1} is rewired to
//     {s, s-1 mod n}, linking the cliques into a ring.
//
// The result is connected with Δ = size (the last vertex of each clique
// also receives the next clique's ring edge).
//
// Complexity: O(cliques·size²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

const (
	methodConnectedCaveman = "ConnectedCaveman"
	minCaves               = 2
	minCaveSize            = 3
)

// ConnectedCaveman returns a Constructor for the connected caveman graph.
func ConnectedCaveman(cliques, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cliques < minCaves {
			return tooFew(methodConnectedCaveman, "cliques", cliques, minCaves)
		}
		if size < minCaveSize {
			return tooFew(methodConnectedCaveman, "size", size, minCaveSize)
		}
		n := cliques * size
		ids, err := addVertices(g, cfg, methodConnectedCaveman, 0, n)
		if err != nil {
			return err
		}
		for c := 0; c < cliques; c++ {
			s := c * size
			if err = clique(g, methodConnectedCaveman, ids[s:s+size]); err != nil {
				return err
			}
			if err = g.RemoveEdge(ids[s], ids[s+1]); err != nil {
				return fmt.Errorf("%s: RemoveEdge(%s,%s): %w", methodConnectedCaveman, ids[s], ids[s+1], err)
			}
			if err = addEdge(g, methodConnectedCaveman, ids[s], ids[(s-1+n)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
