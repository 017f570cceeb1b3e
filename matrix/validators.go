// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - One canonical place for the adjacency checks shared by
//    NewAdjacencyMatrix and every decoder.
//  - Each validator assumes the previous ones passed; ValidateAdjacency
//    runs them in the documented order.
//
// Complexity: every check is O(n²) and allocation free.

package matrix

import "fmt"

// ValidateAdjacency runs, in order: non-empty, square, binary, zero
// diagonal, symmetric. The first violation is returned.
func ValidateAdjacency(rows [][]int64) error {
	if len(rows) == 0 {
		return fmt.Errorf("ValidateAdjacency: %w", ErrEmpty)
	}
	for _, check := range []func([][]int64) error{
		ValidateSquare,
		ValidateBinary,
		ValidateZeroDiagonal,
		ValidateSymmetric,
	} {
		if err := check(rows); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSquare reports the first row whose length is not len(rows).
func ValidateSquare(rows [][]int64) error {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return fmt.Errorf("ValidateSquare: row %d has %d entries, want %d: %w", i, len(r), n, ErrNonSquare)
		}
	}

	return nil
}

// ValidateBinary reports the first entry outside {0,1}.
// Assumes a square matrix.
func ValidateBinary(rows [][]int64) error {
	for i, r := range rows {
		for j, v := range r {
			if v != 0 && v != 1 {
				return fmt.Errorf("ValidateBinary: [%d][%d]=%d: %w", i, j, v, ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal reports the first self-loop.
// Assumes a square matrix.
func ValidateZeroDiagonal(rows [][]int64) error {
	for i := range rows {
		if rows[i][i] != 0 {
			return fmt.Errorf("ValidateZeroDiagonal: [%d][%d]=%d: %w", i, i, rows[i][i], ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric scans the upper triangle for A[i][j] != A[j][i].
// Assumes a square matrix.
func ValidateSymmetric(rows [][]int64) error {
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if rows[i][j] != rows[j][i] {
				return fmt.Errorf("ValidateSymmetric: [%d][%d]=%d vs [%d][%d]=%d: %w",
					i, j, rows[i][j], j, i, rows[j][i], ErrAsymmetry)
			}
		}
	}

	return nil
}
