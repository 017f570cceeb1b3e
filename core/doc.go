// Package core provides the thread-safe in-memory Graph that every other
// brocs package reads from.
//
// The Graph G = (V,E) is deliberately narrow: it models exactly the graphs a
// vertex colorer is defined on.
//
//   - Undirected edges only; adjacency is mirrored in both directions.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - No weights; an edge is an unordered pair of vertex IDs.
//   - Vertex IDs are non-empty strings kept in insertion order.
//
// Insertion order is the dense integer labelling used by the coloring
// algorithms: the i-th vertex returned by Vertices() has dense id i.
// Index makes that relabeling explicit and gives O(1) translation in both
// directions, plus an [][]int adjacency snapshot for tight loops.
//
// Why insertion order and not lexicographic order?
//
//   - A graph decoded from an adjacency matrix keeps row i as vertex i,
//     so colorings printed by the CLI line up with the input file.
//   - Sub-graphs built with InducedSubgraph preserve the relative order of
//     their parent, which keeps recursive algorithms deterministic.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog and adjacency. Readers
//	(HasEdge, NeighborIDs, Degree, Vertices, ...) share the lock; writers
//	serialize. Algorithms only read, so several colorers may run on the
//	same graph at once.
//
// Complexity:
//
//	AddVertex / AddEdge / HasEdge / RemoveEdge  O(1) amortized
//	NeighborIDs(v)                              O(d log d)
//	RemoveVertex(v)                             O(d + V)
//	Clone / InducedSubgraph / NewIndex          O(V + E)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("a", "b")
//	_ = g.AddEdge("b", "c")
//	idx := core.NewIndex(g)
//	fmt.Println(idx.Pos("c"), idx.ID(0)) // 2 a
package core
