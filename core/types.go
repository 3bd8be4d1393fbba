// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors, GraphOption and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - weight is NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - a second edge with the same (from, to) pair.
//	ErrDanglingNeighbor    - FromMap found a neighbour that is not a top-level key.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that is not a finite real number.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDanglingNeighbor indicates an adjacency entry pointing at a node
	// that is not itself a key of the adjacency mapping.
	ErrDanglingNeighbor = errors.New("core: neighbor is not a graph vertex")
)

// Edge is a directed, weighted connection From→To.
type Edge[N comparable] struct {
	// From is the tail vertex.
	From N

	// To is the head vertex.
	To N

	// Weight is a finite signed cost.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(*options)

// options holds construction-time settings shared by every Graph[N].
type options struct {
	name string
}

// WithName attaches a human-readable label, used only in logs and output.
func WithName(name string) GraphOption {
	return func(o *options) { o.name = name }
}

// Graph is a directed weighted graph over comparable vertex IDs.
//
// Vertices and, per vertex, outgoing edges are kept in insertion order.
// That order is the iteration order of Vertices, Edges and Neighbors, and
// therefore the sweep order of every algorithm that consumes the graph.
// Self-loops and parallel edges are rejected.
//
// mu guards all fields below it.
type Graph[N comparable] struct {
	mu sync.RWMutex

	name string

	// order[i] is the i-th inserted vertex; index is its inverse.
	order []N
	index map[N]int

	// out[i] lists the outgoing edges of order[i] in insertion order;
	// pos[i][to] is the position of the (order[i], to) edge in out[i].
	out [][]Edge[N]
	pos []map[N]int

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N]{
		name:  o.name,
		index: make(map[N]int),
	}
}
