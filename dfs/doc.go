// Package dfs implements depth-first topological sort on a core.Graph.
//
// What:
//
//   - TopologicalSort: a linear ordering of all vertices of a directed
//     acyclic graph (DAG), or ErrCycleDetected if a cycle exists.
//   - TopologicalSortFrom: the same, restricted to the vertices reachable
//     from a start vertex. Cycles the start cannot reach do not matter.
//
// Why:
//
//   - Relaxing edges once in topological order yields shortest paths on a
//     DAG even with negative weights (bellmanford.DAG).
//   - Cheap acyclicity test before choosing a shortest-path algorithm.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - TopoOption: functional options (WithCancelContext)
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) (recursion depth is bounded by V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        back-edge discovered
//   - ErrNeighborFetch        neighbor lookup failed
//   - context.Canceled        sort canceled via context
package dfs
