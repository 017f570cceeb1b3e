// File: methods_adjacent.go
// Role: Neighborhood queries (neighbors, degree, Δ).
//
// Determinism:
//   - NeighborIDs() is sorted by insertion position, never by map order.
package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, ordered by insertion position.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is unknown.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return g.pos[out[i]] < g.pos[out[j]] })

	return out, nil
}

// Degree returns the number of neighbors of id.
// Errors: ErrVertexNotFound for unknown IDs.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// MaxDegree returns Δ(G); 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best int
	for _, nbrs := range g.adjacency {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}
