package coloring

import "github.com/katalvlaran/brocs/core"

// IsProper reports whether c colors every vertex of g and no edge joins two
// equal colors. It is a pure query.
//
// Complexity: O(V + E).
func IsProper(g *core.Graph, c Coloring) bool {
	if g == nil {
		return false
	}
	idx := core.NewIndex(g)
	if len(c) != idx.Len() {
		return false
	}
	for _, col := range c {
		if col == Uncolored {
			return false
		}
	}

	return len(conflicts(g, idx, c)) == 0
}

// Conflicts lists the edges whose endpoints share a color, in g.Edges()
// order. A length mismatch yields nil.
func Conflicts(g *core.Graph, c Coloring) []core.Edge {
	if g == nil {
		return nil
	}
	idx := core.NewIndex(g)
	if len(c) != idx.Len() {
		return nil
	}

	return conflicts(g, idx, c)
}

func conflicts(g *core.Graph, idx *core.Index, c Coloring) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		if c[idx.Pos(e.From)] == c[idx.Pos(e.To)] {
			out = append(out, e)
		}
	}

	return out
}

// MaxDegree returns Δ(g); 0 for a nil or empty graph.
func MaxDegree(g *core.Graph) int {
	if g == nil {
		return 0
	}

	return g.MaxDegree()
}

// UniqueColors counts the distinct colors of c, ignoring Uncolored.
func UniqueColors(c Coloring) int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		if col != Uncolored {
			seen[col] = struct{}{}
		}
	}

	return len(seen)
}

// ByID maps each vertex ID of g to its color in c.
func ByID(g *core.Graph, c Coloring) map[string]int {
	ids := g.Vertices()
	out := make(map[string]int, len(ids))
	for i, id := range ids {
		if i < len(c) {
			out[id] = c[i]
		}
	}

	return out
}
