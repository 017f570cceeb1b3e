// File: components.go
// Role: Connectivity queries built on BFS.
// Determinism:
//   - Components are listed by their earliest vertex in insertion order;
//     members of each component appear in BFS visit order.
package bfs

import "github.com/katalvlaran/brocs/core"

// Components returns the connected components of g, ignoring the vertices
// listed in skip. An empty graph has no components.
//
// Complexity: O(V + E).
func Components(g *core.Graph, skip ...string) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	skipped := make(map[string]bool, len(skip))
	for _, id := range skip {
		skipped[id] = true
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] || skipped[id] {
			continue
		}
		res, err := BFS(g, id, WithSkip(skip...))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// IsConnected reports whether g has at most one connected component.
// The empty graph and a single vertex are connected.
func IsConnected(g *core.Graph) (bool, error) {
	return ConnectedWithout(g)
}

// ConnectedWithout reports whether G − removed is connected. Removing every
// vertex leaves the empty graph, which counts as connected.
//
// Complexity: O(V + E).
func ConnectedWithout(g *core.Graph, removed ...string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	skipped := make(map[string]bool, len(removed))
	for _, id := range removed {
		skipped[id] = true
	}

	remaining := 0
	start := ""
	for _, id := range g.Vertices() {
		if skipped[id] {
			continue
		}
		if start == "" {
			start = id
		}
		remaining++
	}
	if remaining == 0 {
		return true, nil
	}

	res, err := BFS(g, start, WithSkip(removed...))
	if err != nil {
		return false, err
	}

	return len(res.Order) == remaining, nil
}
