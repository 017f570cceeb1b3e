// Package coloring computes proper vertex colorings of simple undirected
// graphs.
//
// Two colorers share the Colorer contract:
//
//   - ConnectedSequential: greedy coloring along a breadth-first order from
//     a start vertex (vertex 0, or a seeded random choice). At most Δ+1
//     colors.
//
//   - Brooks: the constructive proof of Brooks' theorem. A connected graph
//     that is neither complete nor an odd cycle gets at most Δ colors;
//     complete graphs get n, cycles get 2 or 3.
//
// Every entry point relabels its input through core.Index: entry i of a
// Coloring is the color of the vertex with dense id i, i.e. the i-th vertex
// of g.Vertices(). Both colorers reject nil and disconnected graphs with
// ErrInvalidInputGraph; ColorComponents colors each component separately.
//
// # Brooks case analysis
//
//	Start ─┬─ cycle ────────────── CS
//	       ├─ complete ─────────── 0..n-1
//	       ├─ distance-2 pair ──┐
//	       ├─ cut vertex x ─────┼─ recurse on both sides, swap, merge
//	       ├─ 2-connected, t ───┤
//	       └─ no t ─────────────┼─ CS (Δ bound not attempted, logged)
//	                            └─ sequence construction
//
// The sequence construction colors the non-adjacent pair a, b with 0, runs
// a BFS from their common neighbor x that skips them, and colors the
// discovered vertices greedily in reverse discovery order, so x comes last
// and sees two equal colors among its neighbors.
//
// WithOnCase reports every case taken, recursion included; WithLogger
// receives Debug records per case and a Warn record for the degenerate
// fallback. An internal precondition that does not hold surfaces as
// ErrInvariantViolation, never as an improper coloring.
//
// Colorers hold no mutable state; a value may be shared across goroutines.
package coloring
