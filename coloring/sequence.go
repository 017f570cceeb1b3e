package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/brocs/bfs"
)

// sequence colors d from the non-adjacent pair a, b with common neighbor x
// (x < 0: the smallest common neighbor). a and b get color 0; the other
// vertices are discovered by BFS from x over G−{a,b}, pushed on a stack in
// discovery order and colored greedily while popping, so x is colored last.
//
// Each vertex but x still has its uncolored BFS parent when colored, and x
// sees a and b share one color, hence at most Δ colors.
func sequence(d *dense, a, b, x int) (Coloring, error) {
	if a == b || d.adjacent(a, b) {
		return nil, violation("pair (%q,%q) is not at distance 2", d.idx.ID(a), d.idx.ID(b))
	}
	if x < 0 {
		if x = commonNeighbor(d, a, b); x < 0 {
			return nil, violation("no common neighbor of %q and %q", d.idx.ID(a), d.idx.ID(b))
		}
	} else if !d.adjacent(x, a) || !d.adjacent(x, b) {
		return nil, violation("%q is not adjacent to both %q and %q", d.idx.ID(x), d.idx.ID(a), d.idx.ID(b))
	}

	colors := newColoring(d.n())
	colors[a], colors[b] = 0, 0

	stack := make([]int, 0, d.n())
	_, err := bfs.BFS(d.g, d.idx.ID(x),
		bfs.WithSkip(d.idx.ID(a), d.idx.ID(b)),
		bfs.WithOnEnqueue(func(id string, _ int) {
			stack = append(stack, d.idx.Pos(id))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("brooks: sequence from %q: %w", d.idx.ID(x), err)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if v := stack[i]; colors[v] == Uncolored {
			colors[v] = d.smallestFree(v, colors)
		}
	}

	if err = checkComplete(d, colors); err != nil {
		return nil, err
	}

	return colors, nil
}

// distanceTwoPairs returns every pair (u,w), u < w, of non-adjacent vertices
// with a common neighbor, sorted.
func distanceTwoPairs(d *dense) [][2]int {
	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for v := 0; v < d.n(); v++ {
		for _, u := range d.adj[v] {
			for _, w := range d.adj[u] {
				if w <= v || d.adjacent(v, w) {
					continue
				}
				p := [2]int{v, w}
				if !seen[p] {
					seen[p] = true
					pairs = append(pairs, p)
				}
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}

// commonNeighbor returns the smallest common neighbor of a and b, or -1.
func commonNeighbor(d *dense, a, b int) int {
	for _, w := range d.adj[a] {
		if d.adjacent(w, b) {
			return w
		}
	}

	return -1
}

// swapColors exchanges every occurrence of c1 and c2.
func swapColors(colors Coloring, c1, c2 int) {
	for i, c := range colors {
		switch c {
		case c1:
			colors[i] = c2
		case c2:
			colors[i] = c1
		}
	}
}

func checkComplete(d *dense, colors Coloring) error {
	for v, c := range colors {
		if c == Uncolored {
			return violation("vertex %q left uncolored", d.idx.ID(v))
		}
	}

	return nil
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("brooks: %s: %w", fmt.Sprintf(format, args...), ErrInvariantViolation)
}
