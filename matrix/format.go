// SPDX-License-Identifier: MIT
// Package: matrix
//
// Format selection and the file-level entry points Load and Save.

package matrix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an on-disk encoding of an adjacency matrix.
type Format string

const (
	FormatNPY  Format = "npy"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Extensions recognised by FormatFromPath and by directory scans.
var Extensions = []string{".npy", ".json", ".yaml", ".yml", ".txt"}

// FormatFromPath picks the format by file extension; unknown extensions
// are read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npy":
		return FormatNPY
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatNPY, FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Decode reads one matrix in format f from r and validates it.
func Decode(r io.Reader, f Format) (*AdjacencyMatrix, error) {
	var (
		rows [][]int64
		err  error
	)
	switch f {
	case FormatNPY:
		rows, err = decodeNPY(r)
	case FormatJSON, FormatYAML:
		rows, err = decodeYAML(r)
	case FormatText:
		rows, err = decodeText(r)
	default:
		return nil, fmt.Errorf("Decode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}

	return NewAdjacencyMatrix(rows)
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m *AdjacencyMatrix, f Format) error {
	rows := m.Rows()
	switch f {
	case FormatNPY:
		return encodeNPY(w, rows)
	case FormatJSON:
		return encodeJSON(w, rows)
	case FormatYAML:
		return encodeYAML(w, rows)
	case FormatText:
		return encodeText(w, rows)
	default:
		return fmt.Errorf("Encode: %q: %w", f, ErrUnknownFormat)
	}
}

// Load reads and validates the matrix stored at path.
func Load(path string) (*AdjacencyMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return m, nil
}

// Save writes m to path in the format implied by its extension.
func Save(path string, m *AdjacencyMatrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Save(%s): %w", path, cerr)
		}
	}()

	if err = Encode(f, m, FormatFromPath(path)); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}
