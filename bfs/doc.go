// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus the connectivity queries
// the colorers are built on.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex and
//     returns a BFSResult (Order, Depth, Parent).
//   - Hooks: OnEnqueue (discovery) and OnVisit (may abort the search).
//   - Vertex exclusion via WithSkip, depth bound via WithMaxDepth.
//   - Components, IsConnected and ConnectedWithout answer "is G (minus a few
//     vertices) still in one piece?" in O(V + E).
//
// Determinism
//
//	core.NeighborIDs returns neighbors in insertion order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Discovery order
//
//	OnEnqueue fires exactly once per vertex, at the moment it is discovered.
//	Pushing each discovered vertex onto a stack and popping it afterwards
//	yields every vertex after all of its BFS descendants, which is the order
//	Brooks' sequence construction colors in.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist or is skipped.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
