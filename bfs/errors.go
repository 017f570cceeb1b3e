package bfs

import "errors"

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start is absent or skipped.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned for an invalid Option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failure to list the neighbors of a vertex.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)
