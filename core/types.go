// Package core defines the simple undirected Graph used across brocs.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop u == v.
//	ErrMultiEdgeNotAllowed - edge {u,v} already present.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered pair of vertex IDs.
//
// Edges() normalizes every pair so that From was inserted before To.
type Edge struct {
	// From is the endpoint with the smaller insertion position.
	From string

	// To is the endpoint with the larger insertion position.
	To string
}

// Graph is a simple undirected graph with string vertex IDs.
//
// mu guards every field below it. order holds IDs in insertion order and
// pos is its inverse; both are rebuilt by RemoveVertex so that positions stay
// dense in [0, VertexCount()).
type Graph struct {
	mu sync.RWMutex

	order []string       // insertion position -> ID
	pos   map[string]int // ID -> insertion position

	// adjacency[u][v] = struct{}{} iff {u,v} ∈ E; mirrored for v.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		pos:       make(map[string]int),
		adjacency: make(map[string]map[string]struct{}),
	}
}
