package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/core"
	"github.com/katalvlaran/brocs/dfs"
	"github.com/katalvlaran/brocs/flow"
)

// Brooks colors a connected graph with at most Δ colors unless it is
// complete (n colors) or an odd cycle (3 colors).
type Brooks struct {
	opts options
	cs   *ConnectedSequential
}

// NewBrooks returns a Brooks colorer. WithSeed only affects the CS
// fallbacks (cycles and the degenerate case).
func NewBrooks(opts ...Option) *Brooks {
	o := newOptions(opts)

	return &Brooks{opts: o, cs: &ConnectedSequential{opts: o}}
}

// ColorGraph colors g following the Brooks case analysis.
//
// Errors:
//   - ErrInvalidInputGraph for nil or disconnected input.
//   - ErrInvariantViolation if a structural precondition fails.
//
// Complexity: dominated by the distance-2 pair scan, O(|S|·(V+E)), and by
// the minimum vertex cuts when no pair qualifies. Recursion depth ≤ V.
func (b *Brooks) ColorGraph(g *core.Graph) (Coloring, error) {
	if err := validateInput(g); err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return Coloring{}, nil
	}

	return b.color(g)
}

// color runs the case analysis on a connected, non-empty graph.
func (b *Brooks) color(g *core.Graph) (Coloring, error) {
	d := newDense(g)
	n := d.n()

	cycle, err := dfs.IsCycleGraph(g)
	if err != nil {
		return nil, fmt.Errorf("brooks: cycle test: %w", err)
	}
	if cycle {
		b.enter(CaseCycle, n)
		return b.cs.color(d), nil
	}

	pairs := distanceTwoPairs(d)
	if len(pairs) == 0 {
		b.enter(CaseComplete, n)
		colors := make(Coloring, n)
		for v := range colors {
			colors[v] = v
		}
		return colors, nil
	}

	for _, p := range pairs {
		ok, err := bfs.ConnectedWithout(g, d.idx.ID(p[0]), d.idx.ID(p[1]))
		if err != nil {
			return nil, fmt.Errorf("brooks: %w", err)
		}
		if ok {
			b.enter(CaseDirectPair, n)
			return sequence(d, p[0], p[1], -1)
		}
	}

	cut, err := flow.MinVertexCut(g, b.flowOptions())
	if err != nil {
		return nil, fmt.Errorf("brooks: minimum vertex cut: %w", err)
	}
	switch len(cut) {
	case 0:
		return nil, violation("minimum vertex cut of a %d-vertex subgraph is empty", n)
	case 1:
		return b.oneConnected(g, d, cut[0])
	default:
		return b.twoConnected(g, d)
	}
}

// oneConnected colors both sides of the cut vertex x recursively and merges
// them. near is the component of G−x holding the lowest dense id; far is
// the rest together with x. x keeps its far color after the far coloring's
// labels are permuted so that it avoids every near neighbor.
func (b *Brooks) oneConnected(g *core.Graph, d *dense, x string) (Coloring, error) {
	b.enter(CaseOneConnected, d.n())

	comps, err := bfs.Components(g, x)
	if err != nil {
		return nil, fmt.Errorf("brooks: %w", err)
	}
	if len(comps) < 2 {
		return nil, violation("cut vertex %q leaves %d component(s)", x, len(comps))
	}
	nearKeep := make(map[string]bool, len(comps[0]))
	for _, id := range comps[0] {
		nearKeep[id] = true
	}
	farKeep := make(map[string]bool, d.n()-len(comps[0]))
	for _, id := range d.idx.IDs() {
		if !nearKeep[id] {
			farKeep[id] = true
		}
	}

	near, far := core.InducedSubgraph(g, nearKeep), core.InducedSubgraph(g, farKeep)
	nearColors, err := b.color(near)
	if err != nil {
		return nil, err
	}
	farColors, err := b.color(far)
	if err != nil {
		return nil, err
	}
	nearIdx, farIdx := core.NewIndex(near), core.NewIndex(far)

	xi := d.idx.Pos(x)
	blocked := make(map[int]bool)
	for _, w := range d.adj[xi] {
		if p := nearIdx.Pos(d.idx.ID(w)); p >= 0 {
			blocked[nearColors[p]] = true
		}
	}
	free := 0
	for blocked[free] {
		free++
	}
	if cx := farColors[farIdx.Pos(x)]; cx != free {
		swapColors(farColors, cx, free)
	}

	colors := newColoring(d.n())
	for i, id := range nearIdx.IDs() {
		colors[d.idx.Pos(id)] = nearColors[i]
	}
	for i, id := range farIdx.IDs() {
		colors[d.idx.Pos(id)] = farColors[i]
	}
	b.opts.logger.Debug("brooks merge", "cut_vertex", x, "near", nearIdx.Len(), "far", farIdx.Len(), "x_color", free)
	if err = checkComplete(d, colors); err != nil {
		return nil, err
	}

	return colors, nil
}

// twoConnected handles a graph without cut vertex in which no distance-2
// pair was usable directly.
func (b *Brooks) twoConnected(g *core.Graph, d *dense) (Coloring, error) {
	n := d.n()
	t := -1
	for v := 0; v < n; v++ {
		if deg := len(d.adj[v]); deg >= 3 && deg <= n-2 {
			t = v
			break
		}
	}
	if t < 0 {
		b.enter(CaseDegenerate, n)
		b.opts.logger.Warn("brooks: no vertex with 3 <= degree <= n-2, falling back to connected sequential",
			"n", n, "max_degree", g.MaxDegree())
		return b.cs.color(d), nil
	}

	a, other, x, kind, err := b.resolveTwoConnected(g, d, t)
	if err != nil {
		return nil, err
	}
	b.enter(kind, n)

	return sequence(d, a, other, x)
}

// resolveTwoConnected fixes the pair (a, b) and, for the block case, their
// common neighbor x = t. x is -1 when sequence should search for it.
func (b *Brooks) resolveTwoConnected(g *core.Graph, d *dense, t int) (int, int, int, Case, error) {
	keep := make(map[string]bool, d.n()-1)
	for v := 0; v < d.n(); v++ {
		if v != t {
			keep[d.idx.ID(v)] = true
		}
	}
	gt := core.InducedSubgraph(g, keep)

	cut, err := flow.MinVertexCut(gt, b.flowOptions())
	switch {
	case err == nil && len(cut) == 0:
		return 0, 0, 0, 0, violation("removing %q disconnects a 2-connected graph", d.idx.ID(t))
	case err == nil && len(cut) == 1:
		return blockPair(d, gt, t)
	case err != nil && !errors.Is(err, flow.ErrNoVertexCut):
		return 0, 0, 0, 0, fmt.Errorf("brooks: minimum vertex cut of G-t: %w", err)
	}

	for v := 0; v < d.n(); v++ {
		if v != t && !d.adjacent(t, v) && commonNeighbor(d, t, v) >= 0 {
			return t, v, -1, CaseTwoConnectedSimple, nil
		}
	}

	return 0, 0, 0, 0, violation("no vertex at distance 2 from %q", d.idx.ID(t))
}

// blockPair picks a and b as neighbors of t inside two different end-blocks
// of G−t, avoiding articulation points; t is their common neighbor.
func blockPair(d *dense, gt *core.Graph, t int) (int, int, int, Case, error) {
	bc, err := dfs.Biconnected(gt)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("brooks: blocks of G-t: %w", err)
	}
	ends := bc.EndBlocks()
	if len(ends) < 2 {
		return 0, 0, 0, 0, violation("G-%q has %d end-block(s)", d.idx.ID(t), len(ends))
	}

	var picked []int
	for _, block := range ends {
		for _, id := range block {
			v := d.idx.Pos(id)
			if d.adjacent(t, v) && !bc.IsArticulation(id) {
				picked = append(picked, v)
				break
			}
		}
		if len(picked) == 2 {
			return picked[0], picked[1], t, CaseTwoConnectedBlocks, nil
		}
	}

	return 0, 0, 0, 0, violation("%q has no inner neighbor in two end-blocks of G-t", d.idx.ID(t))
}

func (b *Brooks) enter(c Case, n int) {
	b.opts.onCase(c, n)
	b.opts.logger.Debug("brooks case", "case", c.String(), "n", n)
}

func (b *Brooks) flowOptions() flow.FlowOptions {
	fo := flow.DefaultOptions()
	fo.Solver = b.opts.solver

	return fo
}
