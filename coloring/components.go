package coloring

import (
	"fmt"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/core"
)

// ColorComponents colors every connected component of g with colorer and
// merges the results by vertex ID. Components reuse the same color labels,
// so the total count is the maximum over components.
//
// Errors: ErrInvalidInputGraph for nil g; any colorer error, annotated with
// the component's first vertex.
func ColorComponents(colorer Colorer, g *core.Graph) (Coloring, error) {
	if g == nil {
		return nil, fmt.Errorf("graph is nil: %w", ErrInvalidInputGraph)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) == 1 {
		return colorer.ColorGraph(g)
	}

	idx := core.NewIndex(g)
	out := newColoring(idx.Len())
	for _, comp := range comps {
		keep := make(map[string]bool, len(comp))
		for _, id := range comp {
			keep[id] = true
		}
		sub := core.InducedSubgraph(g, keep)
		c, err := colorer.ColorGraph(sub)
		if err != nil {
			return nil, fmt.Errorf("component of %q: %w", comp[0], err)
		}
		for i, id := range sub.Vertices() {
			out[idx.Pos(id)] = c[i]
		}
	}

	return out, nil
}
