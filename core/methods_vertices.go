// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Take the write lock.
//   - Stage 2: If id is unknown, append it to the order and grow the
//     adjacency slices so edge methods can index them directly.
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op and keeps its original position.
//   - The error result is always nil today; it keeps the signature aligned
//     with AddEdge so builders can treat both uniformly.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[N]) AddVertex(id N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and returns its index. Caller holds mu.
// Invariant: len(order) == len(out) == len(pos) == len(index).
func (g *Graph[N]) addVertexLocked(id N) int {
	if i, ok := g.index[id]; ok {
		return i
	}

	i := len(g.order)
	g.order = append(g.order, id)
	g.index[id] = i
	g.out = append(g.out, nil)
	g.pos = append(g.pos, nil)

	return i
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]N, len(g.order))
	copy(ids, g.order)

	return ids
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Name returns the label set with WithName, or "".
func (g *Graph[N]) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}
