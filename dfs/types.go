// Package dfs defines depth-first machinery over core.Graph: cycle detection,
// cycle-graph recognition and biconnected decomposition.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNoCycle indicates that FindCycle found the graph acyclic.
	ErrNoCycle = errors.New("dfs: no cycle")
)

// BiconnectedResult is the block decomposition of a graph.
//
// Blocks lists every maximal 2-connected piece (bridges and isolated vertices
// form blocks of size 2 and 1). Members of each block are ordered by
// insertion position; blocks are ordered by their completion in the DFS.
// Articulation lists the cut vertices in insertion order.
type BiconnectedResult struct {
	Blocks       [][]string
	Articulation []string

	isCut map[string]bool
}

// IsArticulation reports whether id is a cut vertex.
func (r *BiconnectedResult) IsArticulation(id string) bool {
	return r.isCut[id]
}

// EndBlocks returns the blocks that contain exactly one articulation point,
// i.e. the leaves of the block-cut tree. A 2-connected graph has none.
func (r *BiconnectedResult) EndBlocks() [][]string {
	var out [][]string
	for _, b := range r.Blocks {
		cuts := 0
		for _, v := range b {
			if r.isCut[v] {
				cuts++
			}
		}
		if cuts == 1 {
			out = append(out, b)
		}
	}

	return out
}
