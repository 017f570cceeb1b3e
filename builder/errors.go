// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, never by redefining sentinels.
//   • Runtime code never panics; option constructors do (WithX(nil)).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k, clique count)
// is smaller than the minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrTooManyEdges indicates that RandomGNM was asked for more edges than a
// simple graph on n vertices can hold.
var ErrTooManyEdges = errors.New("builder: edge count exceeds n(n-1)/2")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG in the resolved config (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph received a nil constructor or
// that a fixture name is not in the catalog.
var ErrConstructFailed = errors.New("builder: construction failed")
