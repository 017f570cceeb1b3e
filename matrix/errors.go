// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; functions wrap them with
// fmt.Errorf("ctx: %w", ErrX) and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrEmpty is returned for a matrix with no rows.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrNonSquare signals a row whose length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrNonZeroDiagonal signals a self-loop A[i][i] = 1.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals A[i][j] != A[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates that a nil *core.Graph was passed to FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownFormat indicates a format name ParseFormat does not know.
	ErrUnknownFormat = errors.New("matrix: unknown format")

	// ErrMalformedNPY indicates a broken .npy magic, header or payload.
	ErrMalformedNPY = errors.New("matrix: malformed npy data")

	// ErrUnsupportedDType indicates an .npy dtype other than bool, int,
	// uint or float, or an array that is not two-dimensional.
	ErrUnsupportedDType = errors.New("matrix: unsupported npy dtype")
)
