// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_random_sparse.go - RandomSparse(n,p): the Erdős–Rényi graph G(n,p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • Each pair {i,j}, i < j, is an edge independently with probability p.
//
// Complexity: O(n²) RNG draws.
//
// Determinism: pairs are visited i-major, j ascending, one draw per pair;
// a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor for G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodRandomSparse, "n", n, minPathNodes)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%.4f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, minProbability, maxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
