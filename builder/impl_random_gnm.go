// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_random_gnm.go - RandomGNM(n,m) and RandomConnected(n,m).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • RandomGNM draws m distinct pairs uniformly (the G(n,m) model).
//   • RandomConnected first grows a random spanning tree (vertex i attaches
//     to a uniform earlier vertex), then tops up with uniform extra pairs
//     until m edges exist; it needs m ≥ n-1.
//
// Complexity: RandomGNM O(m·n) time, O(m) space (sparse Fisher–Yates over
// the pair index space). RandomConnected adds O(n).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/brocs/core"
)

const (
	methodRandomGNM       = "RandomGNM"
	methodRandomConnected = "RandomConnected"
)

// RandomGNM returns a Constructor for a uniform graph with n vertices and
// exactly m edges.
func RandomGNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := randomPrelude(g, cfg, methodRandomGNM, n, m, 0)
		if err != nil {
			return err
		}
		for _, k := range samplePairs(cfg.rng, pairCount(n), m) {
			i, j := decodePair(n, k)
			if err = addEdge(g, methodRandomGNM, ids[i], ids[j]); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected random graph with
// n vertices and m edges.
func RandomConnected(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := randomPrelude(g, cfg, methodRandomConnected, n, m, n-1)
		if err != nil {
			return err
		}
		used := make(map[int]bool, m)
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			used[encodePair(n, j, i)] = true
			if err = addEdge(g, methodRandomConnected, ids[j], ids[i]); err != nil {
				return err
			}
		}
		for added := n - 1; added < m; {
			k := cfg.rng.Intn(pairCount(n))
			if used[k] {
				continue
			}
			used[k] = true
			i, j := decodePair(n, k)
			if err = addEdge(g, methodRandomConnected, ids[i], ids[j]); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// randomPrelude validates (n, m) against [minEdges, n(n-1)/2], checks the
// RNG and inserts the vertices.
func randomPrelude(g *core.Graph, cfg builderConfig, method string, n, m, minEdges int) ([]string, error) {
	if n < minPathNodes {
		return nil, tooFew(method, "n", n, minPathNodes)
	}
	if m < minEdges {
		return nil, tooFew(method, "m", m, minEdges)
	}
	if m > pairCount(n) {
		return nil, fmt.Errorf("%s: m=%d > %d: %w", method, m, pairCount(n), ErrTooManyEdges)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return addVertices(g, cfg, method, 0, n)
}

func pairCount(n int) int { return n * (n - 1) / 2 }

// decodePair maps k ∈ [0, n(n-1)/2) to the k-th pair (i,j), i < j, in
// i-major order.
func decodePair(n, k int) (int, int) {
	i := 0
	for k >= n-1-i {
		k -= n - 1 - i
		i++
	}

	return i, i + 1 + k
}

// encodePair is the inverse of decodePair for i < j.
func encodePair(n, i, j int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// samplePairs returns m distinct values of [0,total) by a partial
// Fisher–Yates shuffle kept in a sparse swap map.
func samplePairs(rng *rand.Rand, total, m int) []int {
	swapped := make(map[int]int, m)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	out := make([]int, m)
	for i := 0; i < m; i++ {
		j := i + rng.Intn(total-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}

	return out
}
