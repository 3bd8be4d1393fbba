// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// from one hub to distinct leaves are safe and all edges appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadersWithWriter mixes readers (Snapshot, Weight) with a
// writer to make sure the race detector stays quiet.
func TestConcurrentReadersWithWriter(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddVertex(0))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			_ = g.AddEdge(i-1, i, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			ids, edges := g.Snapshot()
			// Every edge in a snapshot points at vertices of the same snapshot.
			seen := make(map[int]bool, len(ids))
			for _, id := range ids {
				seen[id] = true
			}
			for _, e := range edges {
				require.True(t, seen[e.From] && seen[e.To])
			}
			_, _ = g.Weight(0, 1)
		}
	}()
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
