// Package dijkstra provides Dijkstra's shortest-path algorithm on core.Graph
// for graphs whose edge weights are all non-negative.
//
// Overview:
//
//   - O((V + E) log V) with a lazy decrease-key binary heap.
//   - Same result shape as package bellmanford: dist for every vertex
//     (+Inf when unreachable) and prev only for vertices with a predecessor.
//     This makes the two interchangeable on non-negative inputs and lets the
//     bellman CLI pick the faster one automatically.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  the source is not a vertex.
//   - ErrNegativeWeight:  some edge weight is negative (fast O(E) pre-scan);
//     use package bellmanford instead.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option
//     constructors on meaningless values.
//
// Options:
//
//   - WithMaxDistance(d):      stop exploring beyond distance d.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as walls.
package dijkstra
