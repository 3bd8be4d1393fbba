// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph with the same vertex and edge order.
//
// Implementation:
//   - Stage 1: Allocate slices and maps sized from the source.
//   - Stage 2: Copy order and index.
//   - Stage 3: Copy non-empty edge lists and their position maps; vertices
//     without out-edges keep nil entries, as in a freshly built graph.
//
// Behavior highlights:
//   - Mutating the clone never affects g, and vice versa.
//
// Complexity: O(V + E)
func (g *Graph[N]) Clone() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[N]{
		name:      g.name,
		order:     make([]N, len(g.order)),
		index:     make(map[N]int, len(g.index)),
		out:       make([][]Edge[N], len(g.out)),
		pos:       make([]map[N]int, len(g.pos)),
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for i, list := range g.out {
		if len(list) == 0 {
			continue
		}
		clone.out[i] = append([]Edge[N](nil), list...)
		clone.pos[i] = make(map[N]int, len(g.pos[i]))
		for to, p := range g.pos[i] {
			clone.pos[i][to] = p
		}
	}

	return clone
}
