package coloring

import (
	"math/rand"

	"github.com/katalvlaran/brocs/core"
)

// ConnectedSequential colors a connected graph greedily in BFS order.
type ConnectedSequential struct {
	opts options
}

// NewConnectedSequential returns a CS colorer; WithSeed picks a random
// start vertex, otherwise the start is dense id 0.
func NewConnectedSequential(opts ...Option) *ConnectedSequential {
	return &ConnectedSequential{opts: newOptions(opts)}
}

// ColorGraph colors g with at most Δ+1 colors.
//
// Errors: ErrInvalidInputGraph for nil or disconnected input.
//
// Complexity: O(V + E).
func (c *ConnectedSequential) ColorGraph(g *core.Graph) (Coloring, error) {
	if err := validateInput(g); err != nil {
		return nil, err
	}
	d := newDense(g)
	if d.n() == 0 {
		return Coloring{}, nil
	}

	return c.color(d), nil
}

func (c *ConnectedSequential) color(d *dense) Coloring {
	return sequential(d, c.start(d.n()))
}

// start draws from a generator local to the call.
func (c *ConnectedSequential) start(n int) int {
	if !c.opts.seeded {
		return 0
	}

	return rand.New(rand.NewSource(c.opts.seed)).Intn(n)
}

// sequential runs the FIFO greedy pass from start. A vertex may sit in the
// queue several times; only its first pop colors it.
func sequential(d *dense, start int) Coloring {
	colors := newColoring(d.n())
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		if colors[v] != Uncolored {
			continue
		}
		for _, w := range d.adj[v] {
			if colors[w] == Uncolored {
				queue = append(queue, w)
			}
		}
		colors[v] = d.smallestFree(v, colors)
	}

	return colors
}
