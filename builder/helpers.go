// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// helpers.go - vertex and edge emission shared by the constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

// addVertices inserts cfg.idFn(offset)..cfg.idFn(offset+n-1) in index order
// and returns the IDs. Existing vertices are left untouched.
func addVertices(g *core.Graph, cfg builderConfig, method string, offset, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(offset + i)
		ids[i] = id
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return ids, nil
}

// addEdges emits the index pairs over ids, wrapping failures with method.
func addEdges(g *core.Graph, method string, ids []string, pairs [][2]int) error {
	for _, p := range pairs {
		if err := addEdge(g, method, ids[p[0]], ids[p[1]]); err != nil {
			return err
		}
	}

	return nil
}

// addEdge inserts {u,v}; an edge that already exists is not an error, so
// constructors can be composed over shared vertices.
func addEdge(g *core.Graph, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}

// tooFew formats the shared size-validation error.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
