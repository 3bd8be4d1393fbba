// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors that build a Graph from plain Go data.
// Policy:
//   - Deterministic: the same input always yields the same vertex and edge order.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// FromMap builds a Graph from an adjacency mapping node → (neighbor → weight).
//
// Go maps have no stable iteration order, so vertices are inserted in ascending
// key order and each vertex's edges in ascending neighbor order. Every
// neighbor must also be a top-level key, otherwise ErrDanglingNeighbor is
// returned. Weight and self-loop rules are those of AddEdge.
//
// Complexity: O(V log V + E log E).
func FromMap[N cmp.Ordered](adj map[N]map[N]float64, opts ...GraphOption) (*Graph[N], error) {
	g := NewGraph[N](opts...)

	// 1) Sorted top-level keys
	keys := make([]N, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	// 2) Register vertices first so the vertex order is exactly the key order.
	for _, k := range keys {
		if err := g.AddVertex(k); err != nil {
			return nil, err
		}
	}

	// 3) Edges, neighbors sorted per vertex
	var nbrs []N
	for _, u := range keys {
		nbrs = nbrs[:0]
		for v := range adj[u] {
			if _, ok := adj[v]; !ok {
				return nil, fmt.Errorf("%w: %v→%v", ErrDanglingNeighbor, u, v)
			}
			nbrs = append(nbrs, v)
		}
		slices.Sort(nbrs)
		for _, v := range nbrs {
			if err := g.AddEdge(u, v, adj[u][v]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ToMap returns the adjacency mapping of g. Vertices without outgoing
// edges map to an empty, non-nil inner map.
// Complexity: O(V + E).
func (g *Graph[N]) ToMap() map[N]map[N]float64 {
	ids, edges := g.Snapshot()

	res := make(map[N]map[N]float64, len(ids))
	for _, id := range ids {
		res[id] = make(map[N]float64)
	}
	for _, e := range edges {
		res[e.From][e.To] = e.Weight
	}

	return res
}
