// Package bellmanford computes single-source shortest paths on directed graphs
// whose edge weights may be negative, and detects negative-weight cycles
// reachable from the source.
//
// Overview:
//
//   - Initialization: every vertex starts at +Inf with no predecessor; the
//     source starts at 0.
//   - Relaxation: |V|-1 sweeps; each sweep visits every edge u→v (weight w)
//     in graph order and lowers dist[v] to dist[u]+w when that is strictly
//     smaller, recording u as v's predecessor.
//   - Check: one more sweep. If any edge could still be relaxed, a negative
//     cycle is reachable from the source and the call fails with
//     ErrNegativeCycle. A negative cycle that the source cannot reach does
//     not affect the result.
//
// When to use:
//
//   - Graphs with negative weights (arbitrage, potentials, difference
//     constraints). For non-negative weights the dijkstra package is faster.
//   - DAG: when the part of the graph reachable from the source has no
//     cycle, one sweep in topological order gives the same distances in
//     O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      the graph (or the adjacency mapping given to Solve) is nil.
//   - ErrInvalidSource: the source is not a vertex of the graph.
//   - ErrNegativeCycle: a reachable negative-weight cycle exists.
//   - ErrNotAcyclic:    DAG found a cycle reachable from the source.
//   - ErrDistanceOverflow: dist[u]+w left the float64 range. Distances are
//     never allowed to saturate to ±Inf, so +Inf in a result always means
//     "unreached" and a negative cycle cannot hide behind -Inf.
//
// API reference:
//
//	func BellmanFord[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error)
//	func Solve[N cmp.Ordered](graph map[N]map[N]float64, source N, opts ...Option) (map[N]float64, map[N]N, error)
//	func DAG[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error)
//
//	  - dist[v]: shortest distance, math.Inf(1) if v is unreachable.
//	  - prev[v]: predecessor of v; absent for the source and unreachable vertices.
//
// Options:
//
//   - WithEarlyExit(): stop after a sweep that changed nothing.
//   - WithLogger(logr.Logger): V(1) summary record per run.
//   - WithStats(*Stats): receive the number of sweeps and relaxations.
//
// Thread safety:
//
//   - Each call owns its state; the input graph is only read. Concurrent
//     calls, on the same graph or different ones, need no locking.
//
// Example:
//
//	dist, prev, err := bellmanford.Solve(map[string]map[string]float64{
//	    "a": {"b": -1, "c": 4},
//	    "b": {"c": 3},
//	    "c": {},
//	}, "a")
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    // shortest paths are undefined
//	}
//	fmt.Println(dist["c"], prev["c"]) // 2 b
package bellmanford
