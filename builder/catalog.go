// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// catalog.go - named fixture sets consumed by `brocs generate` and the
// evaluation suite.
//
// Determinism: Catalog and RandomSuite return entries in a fixed order;
// random entries are reproducible when built with one shared WithRand or
// per-entry WithSeed.

package builder

import (
	"fmt"
	"sort"
)

// Fixture names one constructor. Random fixtures need WithSeed or WithRand.
type Fixture struct {
	Name        string
	Constructor Constructor
	Random      bool
}

// Parameters of the fixed catalog.
const (
	catalogPathLen      = 8
	catalogBipartiteL   = 5
	catalogBipartiteR   = 2
	catalogCaves        = 4
	catalogCaveSize     = 4
	catalogErdosRenyiN  = 20
	catalogErdosRenyiP  = 0.2
	randomSuiteMaxGroup = 100
)

// Grid of the random suite: every (n, m) with m ≤ n(n-1)/2.
var (
	randomSuiteNodes = []int{10, 20, 50, 100, 200}
	randomSuiteEdges = []int{5, 10, 20, 50, 100, 200, 500, 1000}
)

// Catalog returns the named fixture set in a fixed order.
func Catalog() []Fixture {
	return []Fixture{
		{Name: "path", Constructor: Path(catalogPathLen)},
		{Name: "fence", Constructor: Fence()},
		{Name: "house", Constructor: House()},
		{Name: "shovel", Constructor: Shovel()},
		{Name: "bipartite", Constructor: CompleteBipartite(catalogBipartiteL, catalogBipartiteR)},
		{Name: "erdos_renyi", Constructor: RandomSparse(catalogErdosRenyiN, catalogErdosRenyiP), Random: true},
		{Name: "twin_kite", Constructor: TwinKite()},
		{Name: "double_twin_kite", Constructor: DoubleTwinKite()},
		{Name: "diamond", Constructor: Kite()},
		{Name: "cavemen", Constructor: ConnectedCaveman(catalogCaves, catalogCaveSize)},
	}
}

// Lookup returns the catalog constructor called name.
func Lookup(name string) (Fixture, error) {
	for _, f := range Catalog() {
		if f.Name == name {
			return f, nil
		}
	}

	return Fixture{}, fmt.Errorf("Lookup(%q): known %v: %w", name, Names(), ErrConstructFailed)
}

// Names lists the catalog names in sorted order.
func Names() []string {
	cat := Catalog()
	names := make([]string, len(cat))
	for i, f := range cat {
		names[i] = f.Name
	}
	sort.Strings(names)

	return names
}

// RandomSuite returns groups copies of the random grid: for every (n, m)
// a uniform G(n,m) named "random_{n}_{m}_g{i}" and, when m ≥ n-1, a
// connected graph named "dense_random_{n}_{m}_g{i}". groups must be in
// [1,100].
func RandomSuite(groups int) ([]Fixture, error) {
	if groups < 1 || groups > randomSuiteMaxGroup {
		return nil, fmt.Errorf("RandomSuite: groups=%d not in [1,%d]: %w",
			groups, randomSuiteMaxGroup, ErrTooFewVertices)
	}
	var out []Fixture
	for gi := 1; gi <= groups; gi++ {
		for _, n := range randomSuiteNodes {
			for _, m := range randomSuiteEdges {
				if m > pairCount(n) {
					continue
				}
				out = append(out, Fixture{
					Name:        fmt.Sprintf("random_%d_%d_g%d", n, m, gi),
					Constructor: RandomGNM(n, m),
					Random:      true,
				})
				if m >= n-1 {
					out = append(out, Fixture{
						Name:        fmt.Sprintf("dense_random_%d_%d_g%d", n, m, gi),
						Constructor: RandomConnected(n, m),
						Random:      true,
					})
				}
			}
		}
	}

	return out, nil
}
