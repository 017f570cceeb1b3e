// Package flow implements maximum flow on integer capacity networks and the
// minimum vertex cuts that brocs derives from it.
//
// The algorithms offered are:
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(E · √V) on unit-capacity networks, O(V² · E) in general.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Kept as an independent solver; tests cross-check both.
//
// Both share the MaxFlowFunc signature, take a *Network and leave it intact,
// returning the residual network alongside the flow value.
//
// # Vertex cuts
//
// LocalVertexCut(g, s, t) turns the undirected core.Graph into a vertex-split
// network (in:v → out:v of capacity 1) and reads the separator off the
// residual network. MinVertexCut runs Even's scheme over the first κ+1
// vertices to find a global minimum vertex cut; a complete graph has none
// (ErrNoVertexCut), a disconnected one is cut by the empty set.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Logger               *slog.Logger    // Debug record per augmentation
//	    LevelRebuildInterval int             // Dinic only: rebuild levels every N pushes
//	    Solver               MaxFlowFunc     // vertex cuts: Dinic (default) or EdmondsKarp
//	}
//
// # Errors
//
//   - ErrSourceNotFound / ErrSinkNotFound / ErrSameTerminals
//   - ErrAdjacentTerminals  LocalVertexCut on an edge {s,t}
//   - ErrNoVertexCut        MinVertexCut on a complete graph
//   - EdgeError             negative capacity passed to AddArc
//   - context errors from FlowOptions.Ctx
package flow
