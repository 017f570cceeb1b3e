package bfs

import (
	"fmt"

	"github.com/katalvlaran/brocs/core"
)

// BFSResult is the breadth-first tree grown from the start vertex.
type BFSResult struct {
	// Order lists the reached vertices in visit order.
	Order []string

	// Depth is the hop distance of each reached vertex from the start.
	Depth map[string]int

	// Parent links every reached vertex but the start to its discoverer.
	Parent map[string]string
}

// BFS searches g from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, ctx.Err(), or a wrapped OnVisit error. The partial result
// is returned alongside a hook or context error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(start) || cfg.skip[start] {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	cfg.onEnqueue(start, 0)

	// Depth doubles as the visited set.
	queue := []string{start}
	for len(queue) > 0 {
		if err := cfg.ctx.Err(); err != nil {
			return res, err
		}
		id := queue[0]
		queue = queue[1:]
		d := res.Depth[id]

		res.Order = append(res.Order, id)
		if err := cfg.onVisit(id, d); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}
		if cfg.maxDepth > 0 && d >= cfg.maxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, w := range nbrs {
			if _, seen := res.Depth[w]; seen || cfg.skip[w] {
				continue
			}
			res.Depth[w] = d + 1
			res.Parent[w] = id
			cfg.onEnqueue(w, d+1)
			queue = append(queue, w)
		}
	}

	return res, nil
}

// PathTo returns the tree path from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
