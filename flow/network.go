// File: network.go
// Role: Directed capacity network and residual reachability.
// Determinism:
//   - Nodes() is in insertion order; Successors() lists arcs in insertion
//     order of their heads, so every traversal is reproducible.
package flow

import "sort"

// Network is a directed graph with int64 arc capacities.
//
// capMap[u][v] is the total capacity of u→v; parallel arcs added with AddArc
// are summed. A Network is not safe for concurrent mutation.
type Network struct {
	order  []string
	pos    map[string]int
	capMap map[string]map[string]int64
}

// NewNetwork creates an empty Network.
func NewNetwork() *Network {
	return &Network{
		pos:    make(map[string]int),
		capMap: make(map[string]map[string]int64),
	}
}

// AddNode registers id if absent.
func (n *Network) AddNode(id string) {
	if _, ok := n.pos[id]; ok {
		return
	}
	n.pos[id] = len(n.order)
	n.order = append(n.order, id)
	n.capMap[id] = make(map[string]int64)
}

// HasNode reports whether id is a node of the network.
func (n *Network) HasNode(id string) bool {
	_, ok := n.pos[id]

	return ok
}

// AddArc adds capacity c to u→v, creating both endpoints.
// The reverse entry v→u is materialized with zero capacity so residual
// updates never allocate. Loops are ignored.
//
// Errors: EdgeError if c < 0.
func (n *Network) AddArc(u, v string, c int64) error {
	if c < 0 {
		return EdgeError{From: u, To: v, Cap: c}
	}
	n.AddNode(u)
	n.AddNode(v)
	if u == v {
		return nil
	}
	n.capMap[u][v] += c
	if _, ok := n.capMap[v][u]; !ok {
		n.capMap[v][u] = 0
	}

	return nil
}

// Capacity returns the current capacity of u→v (0 if absent).
func (n *Network) Capacity(u, v string) int64 {
	return n.capMap[u][v]
}

// Nodes returns node IDs in insertion order.
func (n *Network) Nodes() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// Successors returns every v with an arc entry u→v (including zero-capacity
// reverse entries), ordered by insertion position.
func (n *Network) Successors(u string) []string {
	out := make([]string, 0, len(n.capMap[u]))
	for v := range n.capMap[u] {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return n.pos[out[i]] < n.pos[out[j]] })

	return out
}

// Clone returns a deep copy.
func (n *Network) Clone() *Network {
	out := &Network{
		order:  append([]string(nil), n.order...),
		pos:    make(map[string]int, len(n.pos)),
		capMap: make(map[string]map[string]int64, len(n.capMap)),
	}
	for id, p := range n.pos {
		out.pos[id] = p
	}
	for u, inner := range n.capMap {
		m := make(map[string]int64, len(inner))
		for v, c := range inner {
			m[v] = c
		}
		out.capMap[u] = m
	}

	return out
}

// Reachable returns the set of nodes reachable from source through arcs of
// positive capacity. On a residual network after a maximum flow this is the
// source side of the unique source-minimal minimum cut.
//
// Complexity: O(V + E).
func (n *Network) Reachable(source string) map[string]bool {
	seen := map[string]bool{}
	if !n.HasNode(source) {
		return seen
	}
	seen[source] = true
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.Successors(u) {
			if n.capMap[u][v] > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// validateTerminals checks presence and distinctness of source and sink.
func (n *Network) validateTerminals(source, sink string) error {
	if !n.HasNode(source) {
		return ErrSourceNotFound
	}
	if !n.HasNode(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameTerminals
	}

	return nil
}
