package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/matrix"
)

func TestValidateAdjacency_Priority(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want error
	}{
		{"empty", nil, matrix.ErrEmpty},
		{"ragged", [][]int64{{0, 1, 0}, {1, 0}}, matrix.ErrNonSquare},
		{"wide", [][]int64{{0, 1}}, matrix.ErrNonSquare},
		{"two on diagonal", [][]int64{{2, 1}, {1, 0}}, matrix.ErrNonBinary},
		{"negative", [][]int64{{0, -1}, {-1, 0}}, matrix.ErrNonBinary},
		{"loop", [][]int64{{1, 0}, {0, 0}}, matrix.ErrNonZeroDiagonal},
		{"loop beats asymmetry", [][]int64{{1, 1}, {0, 0}}, matrix.ErrNonZeroDiagonal},
		{"asymmetric", [][]int64{{0, 1}, {0, 0}}, matrix.ErrAsymmetry},
		{"valid", [][]int64{{0, 1}, {1, 0}}, nil},
		{"single vertex", [][]int64{{0}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateAdjacency(tc.rows)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestNewAdjacencyMatrix_WrapsPosition(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix([][]int64{{0, 1, 0}, {1, 0, 1}, {0, 0, 0}})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "[1][2]=1")
}
