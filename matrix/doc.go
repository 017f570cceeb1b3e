// Package matrix is the persisted form of brocs graphs: a square, symmetric,
// zero-diagonal 0/1 adjacency matrix whose row i is the vertex with dense
// id i.
//
// The package provides:
//
//   - AdjacencyMatrix, validated on construction (NewAdjacencyMatrix).
//   - Converters FromGraph and ToGraph; ToGraph names vertices "0".."n-1"
//     so that row index and dense id coincide.
//   - Codecs for four on-disk formats, chosen by extension:
//     .npy (NumPy v1/v2/v3 arrays of bool, signed/unsigned int or float),
//     .json and .yaml/.yml (a list of rows), anything else plain text
//     (one row per line, values separated by blanks or commas, '#' comments).
//
// Validation order is fixed and tested: empty → shape → entries (0/1) →
// diagonal → symmetry. Every failure wraps one of the sentinels below with
// the offending position, so callers branch with errors.Is.
package matrix
