// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_star.go - Star(leaves): the star K_{1,leaves}.
//
// Contract:
//   • leaves ≥ 1 (else ErrTooFewVertices).
//   • The hub is idFn(0); leaves are idFn(1..leaves).
//
// Complexity: O(leaves).

package builder

import "github.com/katalvlaran/brocs/core"

const methodStar = "Star"

// Star returns a Constructor for a star with the given number of leaves.
func Star(leaves int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if leaves < minStarLeaves {
			return tooFew(methodStar, "leaves", leaves, minStarLeaves)
		}
		ids, err := addVertices(g, cfg, methodStar, 0, leaves+1)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(g, methodStar, ids[centerIndex], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
