package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/dfs"
)

// position returns index of v in slice or -1 if not found
func position[N comparable](order []N, v N) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// assertTopological checks u precedes v for every edge with both ends in order.
func assertTopological[N comparable](t *testing.T, g *core.Graph[N], order []N) {
	t.Helper()
	for _, e := range g.Edges() {
		pu, pv := position(order, e.From), position(order, e.To)
		if pu < 0 || pv < 0 {
			continue
		}
		assert.Less(t, pu, pv, "edge %v→%v out of order", e.From, e.To)
	}
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort[string](nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSortFrom[string](nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph[string]())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that isolated vertices come out in reverse graph order.
func TestTopo_NoEdges(t *testing.T) {
	g := core.NewGraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

// TestTopo_Diamond checks ordering constraints on A→B, A→C, B→D, C→D.
func TestTopo_Diamond(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", -2))
	require.NoError(t, g.AddEdge("B", "D", 3))
	require.NoError(t, g.AddEdge("C", "D", 4))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, order)
	assertTopological(t, g, order)
}

// TestTopo_CycleDetected ensures a simple cycle is rejected.
func TestTopo_CycleDetected(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopoFrom_IgnoresUnreachableCycle sorts only what the start reaches.
func TestTopoFrom_IgnoresUnreachableCycle(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("s", "a", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("x", "y", 1))
	require.NoError(t, g.AddEdge("y", "x", 1))

	_, err := dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	order, err := dfs.TopologicalSortFrom(g, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "b"}, order)

	_, err = dfs.TopologicalSortFrom(g, "x")
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSortFrom(g, "zz")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestTopo_RandomDAGs checks the ordering on generated DAGs.
func TestTopo_RandomDAGs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomDAG(15, 0.3),
		)
		require.NoError(t, err)
		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		assert.Len(t, order, 15)
		assertTopological(t, g, order)
	}
}

// TestTopo_Cancel verifies that a canceled context aborts the sort.
func TestTopo_Cancel(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
