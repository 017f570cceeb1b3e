// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; RemoveVertex keeps the
//     relative order of the survivors.
//
// Concurrency:
//   - Catalog and adjacency protected by mu.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, append to the insertion order and
//     bootstrap an empty adjacency bucket.
//
// Returns:
//   - error: nil on success; ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent. Caller holds mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.pos[id]; ok {
		return
	}
	g.pos[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pos[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Implementation:
//   - Stage 1: Validate presence (ErrVertexNotFound).
//   - Stage 2: Detach the vertex from each neighbor bucket.
//   - Stage 3: Compact the insertion order and rebuild positions.
//
// Complexity:
//   - Time O(d + V), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pos[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.pos, id)

	g.order = append(g.order[:p], g.order[p+1:]...)
	for i := p; i < len(g.order); i++ {
		g.pos[g.order[i]] = i
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be mutated by the caller.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
