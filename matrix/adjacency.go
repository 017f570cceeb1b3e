package matrix

import "fmt"

// AdjacencyMatrix is a validated simple undirected graph on vertices 0..n-1.
//
// Invariants (checked once, in NewAdjacencyMatrix):
//   - square, n ≥ 1;
//   - entries are 0 or 1;
//   - zero diagonal;
//   - symmetric.
//
// Memory: O(n²).
type AdjacencyMatrix struct {
	data [][]bool
}

// NewAdjacencyMatrix validates rows (see ValidateAdjacency) and copies them.
//
// Time Complexity: O(n²)
func NewAdjacencyMatrix(rows [][]int64) (*AdjacencyMatrix, error) {
	if err := ValidateAdjacency(rows); err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}
	data := make([][]bool, len(rows))
	for i, r := range rows {
		data[i] = make([]bool, len(r))
		for j, v := range r {
			data[i][j] = v == 1
		}
	}

	return &AdjacencyMatrix{data: data}, nil
}

// Size returns n.
func (m *AdjacencyMatrix) Size() int { return len(m.data) }

// Has reports whether {i,j} is an edge.
func (m *AdjacencyMatrix) Has(i, j int) (bool, error) {
	if i < 0 || j < 0 || i >= len(m.data) || j >= len(m.data) {
		return false, fmt.Errorf("Has(%d,%d) with n=%d: %w", i, j, len(m.data), ErrOutOfRange)
	}

	return m.data[i][j], nil
}

// Degree returns the number of ones in row i.
func (m *AdjacencyMatrix) Degree(i int) (int, error) {
	if i < 0 || i >= len(m.data) {
		return 0, fmt.Errorf("Degree(%d) with n=%d: %w", i, len(m.data), ErrOutOfRange)
	}
	d := 0
	for _, b := range m.data[i] {
		if b {
			d++
		}
	}

	return d, nil
}

// EdgeCount returns the number of undirected edges.
func (m *AdjacencyMatrix) EdgeCount() int {
	e := 0
	for i := range m.data {
		for j := i + 1; j < len(m.data); j++ {
			if m.data[i][j] {
				e++
			}
		}
	}

	return e
}

// Rows returns a fresh 0/1 copy of the matrix.
func (m *AdjacencyMatrix) Rows() [][]int64 {
	out := make([][]int64, len(m.data))
	for i, r := range m.data {
		out[i] = make([]int64, len(r))
		for j, b := range r {
			if b {
				out[i][j] = 1
			}
		}
	}

	return out
}
