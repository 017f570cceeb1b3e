// File: biconnected.go
// Role: Block (2-connected component) decomposition with articulation points.
//
// Algorithm:
//
//	Hopcroft–Tarjan low-link DFS over the dense relabeling of the graph.
//	disc[v] is the discovery time, low[v] the smallest discovery time reachable
//	from v's subtree through one back-edge. For a tree edge v→w with
//	low[w] ≥ disc[v], v separates w's subtree: the vertices stacked since w
//	plus v form one block. v is an articulation point if it is a non-root with
//	such a child, or the root with at least two DFS children.
//
// Complexity:
//
//	Time O(V + E), Memory O(V).
package dfs

import (
	"sort"

	"github.com/katalvlaran/brocs/core"
)

// tarjanBlocks holds the state of one decomposition.
type tarjanBlocks struct {
	adj    [][]int
	disc   []int
	low    []int
	stack  []int
	isCut  []bool
	blocks [][]int
	clock  int
}

// Biconnected decomposes g into blocks and articulation points.
// Every vertex belongs to at least one block; an isolated vertex forms a
// block by itself.
func Biconnected(g *core.Graph) (*BiconnectedResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	idx := core.NewIndex(g)
	n := idx.Len()
	t := &tarjanBlocks{
		adj:   idx.Adjacency(g),
		disc:  make([]int, n),
		low:   make([]int, n),
		isCut: make([]bool, n),
	}
	for i := range t.disc {
		t.disc[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.disc[v] != -1 {
			continue
		}
		if len(t.adj[v]) == 0 {
			t.disc[v] = t.clock
			t.clock++
			t.blocks = append(t.blocks, []int{v})
			continue
		}
		t.connect(v, -1)
		t.stack = t.stack[:0]
	}

	res := &BiconnectedResult{isCut: make(map[string]bool)}
	for _, b := range t.blocks {
		sort.Ints(b)
		ids := make([]string, len(b))
		for i, v := range b {
			ids[i] = idx.ID(v)
		}
		res.Blocks = append(res.Blocks, ids)
	}
	for v := 0; v < n; v++ {
		if t.isCut[v] {
			res.Articulation = append(res.Articulation, idx.ID(v))
			res.isCut[idx.ID(v)] = true
		}
	}

	return res, nil
}

// connect is the recursive low-link DFS rooted at v with tree parent p.
func (t *tarjanBlocks) connect(v, p int) {
	t.disc[v] = t.clock
	t.low[v] = t.clock
	t.clock++
	t.stack = append(t.stack, v)

	children := 0
	for _, w := range t.adj[v] {
		if t.disc[w] == -1 {
			children++
			t.connect(w, v)
			t.low[v] = min(t.low[v], t.low[w])
			if t.low[w] >= t.disc[v] {
				if p != -1 || children > 1 {
					t.isCut[v] = true
				}
				t.popBlock(v, w)
			}
		} else if w != p {
			t.low[v] = min(t.low[v], t.disc[w])
		}
	}
}

// popBlock unwinds the stack down to w and records the block ∪ {v}.
func (t *tarjanBlocks) popBlock(v, w int) {
	var block []int
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		block = append(block, top)
		if top == w {
			break
		}
	}
	block = append(block, v)
	t.blocks = append(t.blocks, block)
}
