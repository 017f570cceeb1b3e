// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}"; the idFn is
//     not used so both sides stay distinguishable.
//   • Every cross pair {L_i, R_j} is an edge.
//
// Complexity: O(n1·n2) time, O(n1+n2) extra space.
//
// Determinism: all left vertices are inserted before the right ones; edges
// are emitted i-major.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := partition(cfg.leftPrefix, n1)
		right := partition(cfg.rightPrefix, n2)
		for _, id := range append(append([]string{}, left...), right...) {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func partition(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return ids
}
