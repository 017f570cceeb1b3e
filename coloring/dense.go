package coloring

import (
	"fmt"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/core"
)

// dense is the relabeled view every algorithm works on: dense id i is the
// i-th vertex of g, adj[i] lists its neighbors ascending.
type dense struct {
	g   *core.Graph
	idx *core.Index
	adj [][]int
	nbr []map[int]bool
}

func newDense(g *core.Graph) *dense {
	idx := core.NewIndex(g)
	adj := idx.Adjacency(g)
	nbr := make([]map[int]bool, len(adj))
	for v, row := range adj {
		nbr[v] = make(map[int]bool, len(row))
		for _, w := range row {
			nbr[v][w] = true
		}
	}

	return &dense{g: g, idx: idx, adj: adj, nbr: nbr}
}

func (d *dense) n() int { return d.idx.Len() }

func (d *dense) adjacent(u, v int) bool { return d.nbr[u][v] }

// smallestFree returns the least color not held by a colored neighbor of v.
// Only colors 0..deg(v) can be blocked, so the mark array is bounded by the
// degree.
func (d *dense) smallestFree(v int, colors Coloring) int {
	taken := make([]bool, len(d.adj[v])+1)
	for _, w := range d.adj[v] {
		if c := colors[w]; c != Uncolored && c < len(taken) {
			taken[c] = true
		}
	}
	c := 0
	for taken[c] {
		c++
	}

	return c
}

// newColoring returns n Uncolored entries.
func newColoring(n int) Coloring {
	c := make(Coloring, n)
	for i := range c {
		c[i] = Uncolored
	}

	return c
}

// validateInput enforces the entry contract: a non-nil connected graph.
func validateInput(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("graph is nil: %w", ErrInvalidInputGraph)
	}
	ok, err := bfs.IsConnected(g)
	if err != nil {
		return fmt.Errorf("connectivity: %v: %w", err, ErrInvalidInputGraph)
	}
	if !ok {
		return fmt.Errorf("graph with %d vertices is disconnected: %w", g.VertexCount(), ErrInvalidInputGraph)
	}

	return nil
}
