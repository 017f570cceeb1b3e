// Package dfs implements depth-first structure queries on a core.Graph:
// cycle detection, cycle-graph recognition and the block decomposition.
//
// What:
//
//   - DetectCycles: cycles closed by DFS back-edges, found with vertex coloring
//     (White, Gray, Black) and deduplicated by canonical signature.
//   - FindCycle: the first such cycle, or ErrNoCycle.
//   - IsCycleGraph: true iff G is exactly C_n for some n ≥ 3.
//   - Biconnected: blocks (maximal 2-connected sub-graphs), articulation
//     points and end-blocks of the block-cut tree.
//
// Why:
//
//   - A colorer must tell an odd cycle (needs three colors) from the general case.
//   - Separating a 1-connected graph at a cut vertex, and finding two
//     end-blocks when G − t is not 2-connected, both read off the block-cut tree.
//
// Canonical cycles:
//
//	Every reported cycle is closed ([v0, ..., v0]) and rotated with Booth's
//	algorithm to its lexicographically smallest form in either direction.
//
// Complexity:
//
//   - DetectCycles:  Time O(V + E + C·L), Memory O(V + L_max)
//   - FindCycle:     Time O(V + E)
//   - IsCycleGraph:  Time O(V + E)
//   - Biconnected:   Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil  nil graph (DetectCycles treats nil as acyclic instead).
//   - ErrNoCycle   FindCycle on a forest.
package dfs
