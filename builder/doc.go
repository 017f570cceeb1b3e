// Package builder assembles deterministic undirected test graphs for brocs:
// the classical families (paths, cycles, cliques, stars, wheels, complete
// bipartite graphs), the structural gadgets the Brooks colorer has to get
// through (kites, twin kites, caveman rings), the hand-drawn fixtures of the
// evaluation suite (fence, house, shovel) and seeded random graphs.
//
// Every constructor is a Constructor closure; BuildGraph creates an empty
// core.Graph, resolves the BuilderOption list into an immutable config and
// runs the constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomGNM(40, 90),
//	)
//
// Vertex IDs come from the configured IDFn (decimal by default) and are
// inserted in index order, so the dense relabeling used by the colorers is
// the constructor's own numbering.
//
// Errors are sentinels wrapped with method context:
//
//   - ErrTooFewVertices     a size parameter under its minimum
//   - ErrInvalidProbability p outside [0,1]
//   - ErrTooManyEdges       RandomGNM asked for more than n(n-1)/2 edges
//   - ErrNeedRandSource     a random constructor without WithSeed/WithRand
//   - ErrConstructFailed    nil constructor or unknown fixture name
//
// Option constructors panic on meaningless input (nil RNG, nil IDFn);
// constructors themselves never panic.
package builder
