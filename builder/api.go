// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// api.go - the BuildGraph orchestrator.
//
// Contract:
//   • BuildGraph creates g, resolves cfg, runs constructors in order.
//   • Same options, seed and constructor order ⇒ identical graphs,
//     including vertex insertion order.
//   • Constructor errors are wrapped as "BuildGraph: %w" and returned
//     immediately; the partially built graph is discarded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new undirected core.Graph, resolves bopts and applies
// cons in order. Composing several constructors on one graph is allowed;
// shared vertex IDs glue the pieces together.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each
// constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
