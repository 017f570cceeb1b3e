// Package dfs implements cycle detection for simple undirected core.Graphs.
//
// DetectCycles reports the cycles closed by DFS back-edges using three-color
// marking; each is canonicalised with Booth's minimal rotation (forward or
// reversed, whichever is smaller) so that output is independent of the
// vertex the DFS happened to enter the cycle from.
//
// Note that the back-edge cycles form a cycle basis, not the set of all
// simple cycles.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #back-edges, L = avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/brocs/core"
)

// cycleWalker holds the state of one cycle-detection pass.
type cycleWalker struct {
	g      *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
	first  bool // stop after the first cycle
}

// DetectCycles returns (true, cycles, nil) if g contains a cycle, where
// cycles are closed canonical sequences [v0, ..., v0] sorted by signature.
// A nil or acyclic graph yields (false, nil, nil).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}
	w := newCycleWalker(g, false)
	if err := w.run(); err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}
	if len(w.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(w.cycles, func(i, j int) bool {
		return JoinSig(w.cycles[i]) < JoinSig(w.cycles[j])
	})

	return true, w.cycles, nil
}

// FindCycle returns the first cycle met by a DFS from the earliest inserted
// vertex, as a closed canonical sequence [v0, ..., v0].
//
// Errors:
//   - ErrGraphNil for nil input.
//   - ErrNoCycle if g is a forest.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newCycleWalker(g, true)
	if err := w.run(); err != nil {
		return nil, fmt.Errorf("dfs: FindCycle: %w", err)
	}
	if len(w.cycles) == 0 {
		return nil, ErrNoCycle
	}

	return w.cycles[0], nil
}

// IsCycleGraph reports whether g is exactly one simple cycle C_n, n ≥ 3:
// every vertex has degree 2 and the first cycle found spans all n vertices.
//
// Complexity: O(V + E).
func IsCycleGraph(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.VertexCount()
	if n < 3 || g.EdgeCount() != n {
		return false, nil
	}
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			return false, err
		}
		if d != 2 {
			return false, nil
		}
	}
	cyc, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	// closed sequence carries the start twice
	return len(cyc)-1 == n, nil
}

func newCycleWalker(g *core.Graph, first bool) *cycleWalker {
	n := g.VertexCount()

	return &cycleWalker{
		g:     g,
		state: make(map[string]int, n),
		path:  make([]string, 0, n),
		seen:  make(map[string]struct{}),
		first: first,
	}
}

// run launches a visit from every White vertex in insertion order.
func (w *cycleWalker) run() error {
	for _, v := range w.g.Vertices() {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v, ""); err != nil {
			return err
		}
		if w.first && len(w.cycles) > 0 {
			return nil
		}
	}

	return nil
}

// visit performs the recursive three-color DFS from id.
// A Gray neighbor other than the tree parent closes a cycle of length ≥ 3.
func (w *cycleWalker) visit(id, parent string) error {
	w.state[id] = Gray
	w.path = append(w.path, id)

	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range nbrs {
		if w.first && len(w.cycles) > 0 {
			break
		}
		switch w.state[nbr] {
		case White:
			if err = w.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			if nbr == parent {
				continue
			}
			w.record(nbr)
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.state[id] = Black

	return nil
}

// record extracts the cycle path[idx(start):] + start and keeps it if new.
func (w *cycleWalker) record(start string) {
	idx := IndexOf(w.path, start)
	seq := append([]string(nil), w.path[idx:]...)

	sig, canon := canonical(seq)
	if _, exists := w.seen[sig]; exists {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, canon)
}

// canonical picks the smaller of the minimal forward and minimal reversed
// rotation of the open cycle base, closes it, and returns its signature.
func canonical(base []string) (string, []string) {
	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}
	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
