// SPDX-License-Identifier: MIT
//
// Package dfs provides depth-first algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	graph *core.Graph[N] // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[N]int      // visitation state: 0=White,1=Gray,2=Black
	order []N            // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// DFS roots are taken in graph order, so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns an error wrapping ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[N comparable](g *core.Graph[N], options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sorter := newTopoSorter(g, options)
	for _, v := range g.Vertices() {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return sorter.result(), nil
}

// TopologicalSortFrom orders only the vertices reachable from start.
// Cycles elsewhere in g are ignored; a cycle reachable from start yields
// ErrCycleDetected. A start vertex not in g yields ErrStartVertexNotFound.
func TopologicalSortFrom[N comparable](g *core.Graph[N], start N, options ...TopoOption) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	sorter := newTopoSorter(g, options)
	if err := sorter.visit(start); err != nil {
		return nil, err
	}

	return sorter.result(), nil
}

func newTopoSorter[N comparable](g *core.Graph[N], options []TopoOption) *topoSorter[N] {
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	n := g.VertexCount()

	return &topoSorter[N]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, n), // all vertices start as White (0)
		order: make([]N, 0, n),    // capacity hint for post-order
	}
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[N]) visit(id N) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back-edge into %v", ErrCycleDetected, id)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Retrieve outgoing edges in insertion order
	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// result reverses the post-order in place into topological order.
func (t *topoSorter[N]) result() []N {
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order
}
