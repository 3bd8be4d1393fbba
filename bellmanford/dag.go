// SPDX-License-Identifier: MIT
//
// File: dag.go
// Role: single-sweep shortest paths when the part of the graph reachable
// from the source is acyclic.

package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/dfs"
)

// ErrNotAcyclic indicates that DAG was called on a graph with a cycle
// reachable from the source. It wraps dfs.ErrCycleDetected.
var ErrNotAcyclic = errors.New("bellmanford: graph reachable from source is not acyclic")

// DAG computes the same distances as BellmanFord for graphs whose
// source-reachable part has no cycle, negative weights included.
//
// Edges are relaxed once, grouped by tail in topological order
// (dfs.TopologicalSortFrom), so the cost is O(V + E) instead of O(V · E).
// Stats report a single round. Vertices the source cannot reach keep +Inf
// and may lie on cycles without affecting the result.
func DAG[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSource, source)
	}
	order, err := dfs.TopologicalSortFrom(g, source)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, nil, fmt.Errorf("%w: %w", ErrNotAcyclic, err)
		}
		return nil, nil, fmt.Errorf("bellmanford: %w", err)
	}

	// Reorder the snapshot's edges so tails appear in topological order;
	// edges of unreachable tails are dropped since they can never relax.
	ids, edges := g.Snapshot()
	byTail := make(map[N][]core.Edge[N], len(order))
	for _, e := range edges {
		byTail[e.From] = append(byTail[e.From], e)
	}
	sorted := make([]core.Edge[N], 0, len(edges))
	for _, u := range order {
		sorted = append(sorted, byTail[u]...)
	}

	r := newRunner(ids, sorted, cfg)
	r.init(r.index[source])
	_, err = r.sweep()
	r.stats.Rounds = 1

	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}
	cfg.Logger.V(1).Info("dag sweep finished",
		"graph", g.Name(),
		"vertices", len(ids),
		"reachable", len(order),
		"relaxations", r.stats.Relaxations,
		"overflow", err != nil,
	)
	if err != nil {
		return nil, nil, err
	}
	dist, prev := r.export(ids)

	return dist, prev, nil
}
