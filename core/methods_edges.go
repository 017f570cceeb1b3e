// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() is sorted by (pos(From), pos(To)).
//
// Concurrency:
//   - All access under mu.
package core

import "sort"

// AddEdge inserts the undirected edge {u,v}, auto-creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, create endpoints in argument order.
//   - Stage 3: Reject duplicates (ErrMultiEdgeNotAllowed), then mirror the pair.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Notes:
//   - When a duplicate is rejected the endpoints are already present, so the
//     graph is unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, dup := g.adjacency[u][v]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v}.
// Errors: ErrEdgeNotFound if the pair is not adjacent (or either end is unknown).
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} ∈ E. Unknown IDs yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge exactly once, From inserted before To,
// sorted by (pos(From), pos(To)).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		pu := g.pos[u]
		for v := range nbrs {
			if pu < g.pos[v] {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.pos[out[i].From], g.pos[out[j].From]
		if fi != fj {
			return fi < fj
		}

		return g.pos[out[i].To] < g.pos[out[j].To]
	})

	return out
}
