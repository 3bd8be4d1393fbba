// SPDX-License-Identifier: MIT
//
// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on directed graphs with signed edge weights.
//
// Complexity:
//
//   - Time:  O(V · E)   (|V|-1 sweeps over all E edges, plus one check sweep)
//   - Space: O(V + E)   (index-based snapshot of the graph, dist and prev arrays)
//
// Notes on implementation choices:
//
//   - The graph is snapshotted once under its read lock and re-indexed to
//     dense integers, so the hot loop touches only slices.
//   - Unreached vertices keep +Inf and are skipped as relaxation tails, so
//     +Inf is never combined with a weight.
//   - Improvement is strict (<): on ties the first predecessor found stays.
//   - A relaxation from a finite tail that yields ±Inf aborts the run with
//     ErrDistanceOverflow; +Inf therefore always means "unreached".
package bellmanford

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bellman/core"
)

// BellmanFord computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: distance for every vertex of g; math.Inf(1) if unreachable.
//   - prev: prev[v] == u means the last improving relaxation into v came from u.
//     Only vertices that have a predecessor appear; the source and unreachable
//     vertices have no entry (test with the comma-ok form).
//   - err:  ErrNilGraph, ErrInvalidSource, ErrNegativeCycle or
//     ErrDistanceOverflow. On error both maps are nil; there is no partial
//     result.
//
// Sweep order is the graph's order: vertices in insertion order, and each
// vertex's outgoing edges in insertion order. Without the early-exit option
// exactly |V|-1 sweeps are performed.
//
// The graph is never mutated; concurrent calls on the same graph are safe.
func BellmanFord[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	ids, edges := g.Snapshot()
	r := newRunner(ids, edges, cfg)
	src, ok := r.index[source]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSource, source)
	}

	// 3) Initialize, relax, check
	r.init(src)
	err := r.relax()
	if err == nil {
		err = r.check()
	}

	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}
	cfg.Logger.V(1).Info("bellman-ford finished",
		"graph", g.Name(),
		"vertices", len(ids),
		"edges", len(edges),
		"rounds", r.stats.Rounds,
		"relaxations", r.stats.Relaxations,
		"negativeCycle", errors.Is(err, ErrNegativeCycle),
		"overflow", errors.Is(err, ErrDistanceOverflow),
	)
	if err != nil {
		return nil, nil, err
	}

	// 4) Export dense state as maps keyed by vertex ID.
	dist, prev := r.export(ids)

	return dist, prev, nil
}

// Solve runs BellmanFord on an adjacency mapping node → (neighbor → weight).
//
// The mapping is converted with core.FromMap, so vertices and neighbors are
// swept in ascending order and every neighbor must also be a top-level key
// (core.ErrDanglingNeighbor otherwise). A source that is not a key yields
// ErrInvalidSource.
func Solve[N cmp.Ordered](graph map[N]map[N]float64, source N, opts ...Option) (map[N]float64, map[N]N, error) {
	if graph == nil {
		return nil, nil, ErrNilGraph
	}
	g, err := core.FromMap(graph)
	if err != nil {
		return nil, nil, fmt.Errorf("bellmanford: %w", err)
	}

	return BellmanFord(g, source, opts...)
}

// NegativeWeights reports whether any edge of g has a negative weight.
// A nil graph has none. Complexity: O(V + E).
func NegativeWeights[N comparable](g *core.Graph[N]) bool {
	if g == nil {
		return false
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}

// edge is a dense-index copy of core.Edge.
type edge struct {
	u, v int
	w    float64
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner[N comparable] struct {
	index map[N]int // vertex ID → dense index
	edges []edge    // edges in sweep order
	dist  []float64 // dist[i] = best-known distance of vertex i
	prev  []int     // prev[i] = predecessor index, or noPrev
	cfg   Options
	stats Stats
}

// noPrev marks "no predecessor".
const noPrev = -1

func newRunner[N comparable](ids []N, edges []core.Edge[N], cfg Options) *runner[N] {
	r := &runner[N]{
		index: make(map[N]int, len(ids)),
		edges: make([]edge, len(edges)),
		dist:  make([]float64, len(ids)),
		prev:  make([]int, len(ids)),
		cfg:   cfg,
	}
	for i, id := range ids {
		r.index[id] = i
	}
	for i, e := range edges {
		r.edges[i] = edge{u: r.index[e.From], v: r.index[e.To], w: e.Weight}
	}

	return r
}

// init sets dist = +Inf and prev = none everywhere, then dist[src] = 0.
func (r *runner[N]) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPrev
	}
	r.dist[src] = 0
}

// relax performs up to |V|-1 sweeps over the edge list.
func (r *runner[N]) relax() error {
	rounds := len(r.dist) - 1
	for round := 0; round < rounds; round++ {
		changed, err := r.sweep()
		r.stats.Rounds++
		if err != nil {
			return err
		}
		if !changed && r.cfg.EarlyExit {
			break
		}
	}

	return nil
}

// sweep relaxes every edge once, in order, and reports whether any
// distance improved. A finite tail whose sum leaves the float64 range
// stops the sweep with ErrDistanceOverflow.
func (r *runner[N]) sweep() (bool, error) {
	var (
		du, nd  float64
		changed bool
	)
	for _, e := range r.edges {
		du = r.dist[e.u]
		if math.IsInf(du, 1) {
			continue // tail not reached yet
		}
		nd = du + e.w
		if math.IsInf(nd, 0) {
			return changed, fmt.Errorf("%w: %g%+g", ErrDistanceOverflow, du, e.w)
		}
		if nd < r.dist[e.v] {
			r.dist[e.v] = nd
			r.prev[e.v] = e.u
			r.stats.Relaxations++
			changed = true
		}
	}

	return changed, nil
}

// check verifies dist[v] <= dist[u] + w for every edge with a reached tail.
func (r *runner[N]) check() error {
	for _, e := range r.edges {
		du := r.dist[e.u]
		if math.IsInf(du, 1) {
			continue
		}
		nd := du + e.w
		if math.IsInf(nd, 0) {
			return fmt.Errorf("%w: %g%+g", ErrDistanceOverflow, du, e.w)
		}
		if nd < r.dist[e.v] {
			return ErrNegativeCycle
		}
	}

	return nil
}

// export converts the dense arrays into ID-keyed maps.
func (r *runner[N]) export(ids []N) (map[N]float64, map[N]N) {
	dist := make(map[N]float64, len(ids))
	prev := make(map[N]N)
	for i, id := range ids {
		dist[id] = r.dist[i]
		if p := r.prev[i]; p != noPrev {
			prev[id] = ids[p]
		}
	}

	return dist, prev
}
