// Package brocs colors undirected graphs following the constructive proof
// of Brooks' theorem: a connected graph that is neither complete nor an odd
// cycle can be properly colored with at most Δ colors, Δ being its maximum
// degree. A greedy connected-sequential colorer (at most Δ+1 colors) is
// kept alongside for comparison.
//
// The module is organized in packages:
//
//	core/       - string-ID undirected Graph, dense Index, induced subgraphs
//	bfs/        - breadth-first walks with hooks, components, connectivity
//	dfs/        - cycle detection, cycle-graph test, blocks and articulation points
//	flow/       - Dinic and Edmonds–Karp max-flow, minimum vertex cuts
//	coloring/   - Brooks and ConnectedSequential colorers, properness checks
//	builder/    - deterministic and seeded graph constructors, fixture catalog
//	matrix/     - 0/1 adjacency matrices: validation and .npy/.json/.yaml/text codecs
//	evaluation/ - timed runs, reports, CSV/YAML export, prometheus metrics
//	cmd/brocs/  - the `brocs` command line (color, eval, generate)
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Shovel())
//	c, _ := coloring.NewBrooks().ColorGraph(g)
//	fmt.Println(c, coloring.IsProper(g, c)) // [0 1 2 1 0 1 0] true
//
//	go install github.com/katalvlaran/brocs/cmd/brocs@latest
package brocs
