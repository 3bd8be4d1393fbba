// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bellman/core"
)

// Dijkstra computes shortest distances from source to all vertices of g.
//
// Returns:
//
//   - dist: distance for every vertex (math.Inf(1) if unreachable or beyond MaxDistance).
//   - prev: prev[v] == u means the shortest path to v goes through u.
//     The source and unreached vertices have no entry.
//   - err:  ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight or
//     ErrDistanceOverflow.
//
// The map conventions match package bellmanford, so both can be compared directly.
func Dijkstra[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	ids, edges := g.Snapshot()

	index := make(map[N]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	src, ok := index[source]
	if !ok {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	out := make([][]arc, len(ids))
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		u := index[e.From]
		out[u] = append(out[u], arc{to: index[e.To], w: e.Weight})
	}

	// 4) Run
	r := &runner{
		options: cfg,
		out:     out,
		dist:    make([]float64, len(ids)),
		prev:    make([]int, len(ids)),
		visited: make([]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 5) Export
	dist := make(map[N]float64, len(ids))
	prev := make(map[N]N)
	for i, id := range ids {
		dist[id] = r.dist[i]
		if p := r.prev[i]; p >= 0 {
			prev[id] = ids[p]
		}
	}

	return dist, prev, nil
}

// arc is a dense-index outgoing edge.
type arc struct {
	to int
	w  float64
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	out     [][]arc   // out[u] = outgoing arcs of u
	dist    []float64 // current best distance from source
	prev    []int     // predecessor index, -1 for none
	visited []bool    // distance finalized
	pq      nodePQ
}

// init sets dist = +Inf and prev = none everywhere and pushes the source.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its arcs.
// It stops when the heap is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc out of u and pushes improved neighbors.
func (r *runner) relax(u int) error {
	var nd float64
	for _, a := range r.out[u] {
		if a.w >= r.options.InfEdgeThreshold {
			continue
		}
		nd = r.dist[u] + a.w
		if math.IsInf(nd, 1) {
			return fmt.Errorf("%w: %g%+g", ErrDistanceOverflow, r.dist[u], a.w)
		}
		if nd > r.options.MaxDistance || nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.prev[a.to] = u
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
