// Package bellman computes single-source shortest paths on directed graphs
// whose edge weights may be negative, and detects negative-weight cycles
// reachable from the source.
//
// What is inside?
//
//	core/        - generic, insertion-ordered, thread-safe directed graph Graph[N]
//	bellmanford/ - Bellman-Ford (|V|-1 sweeps + check) and the one-sweep DAG variant
//	dijkstra/    - non-negative weights, lazy binary heap; same result maps
//	dfs/         - topological sort (whole graph or reachable from a start)
//	builder/     - deterministic fixtures: Path, Cycle, Complete, RandomSparse, RandomDAG
//	graphio/     - YAML/JSON/HCL graph documents; text/YAML/JSON/DOT results
//	cmd/bellman  - CLI: solve, generate, version
//
// Result conventions shared by every solver:
//
//   - dist[v] is the shortest distance, math.Inf(1) when v is unreachable.
//   - prev[v] is v's predecessor; the source and unreachable vertices have
//     no entry (use the comma-ok form).
//   - A reachable negative cycle is an error (bellmanford.ErrNegativeCycle),
//     never a partial result.
//
// Quick example:
//
//	    a ──-1──▶ b
//	    │         │
//	    4         3
//	    ▼         ▼
//	    c ◀───────┘
//
//	dist, prev, err := bellmanford.Solve(map[string]map[string]float64{
//	    "a": {"b": -1, "c": 4},
//	    "b": {"c": 3},
//	    "c": {},
//	}, "a")
//	// dist = {a:0 b:-1 c:2}, prev = {b:a c:b}
//
//	go get github.com/katalvlaran/bellman
package bellman
