// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// constants.go - shared minima and fixed vertex roles.

package builder

// Size minima shared by several constructors.
const (
	minPathNodes     = 1 // a single vertex is a valid path
	minCycleNodes    = 3 // a simple cycle needs a triangle
	minCompleteNodes = 1
	minStarLeaves    = 1
	minWheelRim      = 3
	minProbability   = 0.0
	maxProbability   = 1.0
)

// Hub indices for star-like constructors; the hub is always inserted first.
const (
	centerIndex = 0
)
