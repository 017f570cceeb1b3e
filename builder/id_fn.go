// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// id_fn.go - vertex ID schemes.
//
// Every scheme is a pure function of the index. Schemes panic on a
// negative index because constructors only ever pass 0..n-1.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its string ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0 → "0", 12 → "12".
// It matches the row numbering of adjacency-matrix files.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns idx+1 in decimal, the numbering used by hand-drawn
// fixtures on paper: 0 → "1".
func OneBasedIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("OneBasedIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.Itoa(idx + 1)
}

// ExcelColumnIDFn returns spreadsheet column labels: 0 → "A", 25 → "Z",
// 26 → "AA", 701 → "ZZ", 702 → "AAA".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// SymbolNumberIDFn returns prefix followed by the decimal index:
// SymbolNumberIDFn("v")(3) → "v3".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithOneBasedIDs sets the ID scheme to OneBasedIDFn.
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
