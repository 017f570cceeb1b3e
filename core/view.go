// File: view.go
// Role: Non-mutating graph views (deep copies and induced sub-graphs).
// Determinism:
//   - Both views preserve the relative insertion order of the source.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
package core

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. A nil keep map keeps every vertex.
//
// Vertices are inserted in the source's order, so dense ids of the result
// are monotone in the dense ids of the source.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.order {
		if keep == nil || keep[id] {
			out.addVertexLocked(id)
		}
	}
	for _, u := range out.order {
		for v := range g.adjacency[u] {
			if _, ok := out.pos[v]; !ok {
				continue
			}
			if _, seen := out.adjacency[u][v]; seen {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			out.adjacency[v][u] = struct{}{}
			out.edgeCount++
		}
	}

	return out
}
