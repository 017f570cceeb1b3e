package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/brocs/core"
)

// FromGraph builds the adjacency matrix of g; row i is the vertex with
// dense id i (insertion order).
//
// Time Complexity: O(n² + m)
func FromGraph(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	idx := core.NewIndex(g)
	if idx.Len() == 0 {
		return nil, fmt.Errorf("FromGraph: %w", ErrEmpty)
	}
	data := make([][]bool, idx.Len())
	for i, nbrs := range idx.Adjacency(g) {
		data[i] = make([]bool, idx.Len())
		for _, j := range nbrs {
			data[i][j] = true
		}
	}

	return &AdjacencyMatrix{data: data}, nil
}

// ToGraph returns the graph of m with vertex IDs "0".."n-1", inserted in row
// order so that core.NewIndex maps ID "i" to i.
//
// Time Complexity: O(n²)
func (m *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()
	n := len(m.data)
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !m.data[i][j] {
				continue
			}
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
				return nil, fmt.Errorf("ToGraph: %w", err)
			}
		}
	}

	return g, nil
}
