// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order, then each vertex's edges in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate weight (finite) and reject self-loops.
//  2. Ensure endpoints exist (auto-add, appended in call order: from, then to).
//  3. Reject a second edge for the same (from, to) pair.
//  4. Append the edge to from's outgoing list.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, weight float64) error {
	// 1) Input validation
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%g", ErrBadWeight, from, to, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	u := g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Parallel-edge check
	if _, dup := g.pos[u][to]; dup {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Link
	if g.pos[u] == nil {
		g.pos[u] = make(map[N]int)
	}
	g.pos[u][to] = len(g.out[u])
	g.out[u] = append(g.out[u], Edge[N]{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph[N]) HasEdge(from, to N) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph[N]) Weight(from, to N) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[from]
	if !ok {
		return 0, false
	}
	p, ok := g.pos[u][to]
	if !ok {
		return 0, false
	}

	return g.out[u][p].Weight, true
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
// Returns ErrVertexNotFound if id is absent. The copy may be modified freely;
// the graph's own list is untouched.
// Complexity: O(deg⁺(id)).
func (g *Graph[N]) Neighbors(id N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	res := make([]Edge[N], len(g.out[u]))
	copy(res, g.out[u])

	return res, nil
}

// Edges returns every edge in sweep order: vertices in insertion order,
// and for each vertex its outgoing edges in insertion order.
// Complexity: O(V + E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res := make([]Edge[N], 0, g.edgeCount)
	for _, list := range g.out {
		res = append(res, list...)
	}

	return res
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Snapshot returns vertices and edges captured under a single read lock,
// so algorithms see a consistent view even if the graph is mutated later.
// Both slices are copies owned by the caller.
//
// Implementation:
//   - Stage 1: Copy the vertex order.
//   - Stage 2: Concatenate the per-vertex edge lists in vertex order, which
//     is exactly the order Edges() reports.
//
// Complexity: O(V + E) time and space.
func (g *Graph[N]) Snapshot() ([]N, []Edge[N]) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) Vertices
	ids := make([]N, len(g.order))
	copy(ids, g.order)

	// 2) Edges in sweep order
	edges := make([]Edge[N], 0, g.edgeCount)
	for _, list := range g.out {
		edges = append(edges, list...)
	}

	return ids, edges
}
