// Package core provides the thread-safe, in-memory directed weighted Graph
// consumed by the shortest-path packages of bellman.
//
// The Graph G = (V,E) is generic over any comparable vertex ID:
//
//   - Directed edges only; an edge A→B does not imply B→A.
//   - float64 weights, signed, but always finite (ErrBadWeight otherwise).
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - Insertion order is preserved for vertices and for each vertex's
//     outgoing edges. Algorithms sweep edges in exactly this order, which
//     makes every result reproducible run after run.
//   - A single sync.RWMutex guards the catalog; all queries take the read
//     lock, so any number of concurrent readers may share one graph.
//
// Core Methods:
//
//	AddVertex(id N) error                      // O(1), idempotent
//	HasVertex(id N) bool                       // O(1)
//	AddEdge(from, to N, w float64) error       // O(1), auto-adds endpoints
//	HasEdge(from, to N) bool                   // O(1)
//	Weight(from, to N) (float64, bool)         // O(1)
//	Neighbors(id N) ([]Edge[N], error)         // O(deg⁺)
//	Vertices() []N                             // O(V), insertion order
//	Edges() []Edge[N]                          // O(V+E), sweep order
//	Snapshot() ([]N, []Edge[N])                // O(V+E), one consistent view
//	Clone() *Graph[N]                          // O(V+E)
//	FromMap(map[N]map[N]float64) (*Graph[N], error)
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("a", "b", -1)
//	_ = g.AddEdge("b", "c", 3)
//	fmt.Println(g.Vertices()) // [a b c]
package core
