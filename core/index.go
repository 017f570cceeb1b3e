// File: index.go
// Role: Dense relabeling of a Graph snapshot (ID <-> 0..n-1).
// Determinism:
//   - Dense id i is the i-th vertex of Vertices(); adjacency rows are ascending.
package core

import "sort"

// Index is an immutable bidirectional map between vertex IDs and the dense
// integer ids 0..n-1, taken from a Graph at construction time.
//
// Later mutations of the Graph are not reflected; build a new Index instead.
type Index struct {
	ids []string
	pos map[string]int
}

// NewIndex snapshots the vertex order of g.
// Complexity: O(V).
func NewIndex(g *Graph) *Index {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return &Index{ids: ids, pos: pos}
}

// Len returns the number of indexed vertices.
func (x *Index) Len() int { return len(x.ids) }

// ID returns the vertex ID with dense id i. It panics if i is out of range.
func (x *Index) ID(i int) string { return x.ids[i] }

// IDs returns a copy of the dense-ordered ID list.
func (x *Index) IDs() []string {
	out := make([]string, len(x.ids))
	copy(out, x.ids)

	return out
}

// Pos returns the dense id of the vertex, or -1 if it is not indexed.
func (x *Index) Pos(id string) int {
	if p, ok := x.pos[id]; ok {
		return p
	}

	return -1
}

// Adjacency returns adj where adj[i] lists the dense ids adjacent to i in
// ascending order. Vertices of g that are not indexed are skipped.
//
// Complexity: O(V + E log Δ).
func (x *Index) Adjacency(g *Graph) [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([][]int, len(x.ids))
	for i, id := range x.ids {
		row := make([]int, 0, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			if p, ok := x.pos[nbr]; ok {
				row = append(row, p)
			}
		}
		sort.Ints(row)
		adj[i] = row
	}

	return adj
}
