// Package builder_test contains functional tests for the graph constructors,
// verifying topology, counts, determinism and error wrapping.
package builder_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph[string])
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph[string]) {
				for i := 0; i < 3; i++ {
					w, ok := g.Weight(strconv.Itoa(i), strconv.Itoa(i+1))
					assert.True(t, ok)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
				assert.False(t, g.HasEdge("1", "0"), "path is directed")
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph[string]) {
				assert.True(t, g.HasEdge("4", "0"), "ring closes")
			},
		},
		{
			name:  "Cycle(2)",
			ctor:  builder.Cycle(2),
			wantV: 2, wantE: 2,
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 30,
		},
		{
			name:  "RandomDAG(6,1)",
			ctor:  builder.RandomDAG(6, 1),
			wantV: 6, wantE: 15,
			check: func(t *testing.T, g *core.Graph[string]) {
				for _, e := range g.Edges() {
					u, _ := strconv.Atoi(e.From)
					v, _ := strconv.Atoi(e.To)
					assert.Less(t, u, v, "DAG edges only go forward")
				}
			},
		},
		{
			name:  "RandomDAG(6,0)",
			ctor:  builder.RandomDAG(6, 0),
			wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(1)", builder.Cycle(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomDAG(p>1)", builder.RandomDAG(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(p=NaN)", builder.RandomSparse(3, math.NaN()), builder.ErrInvalidProbability},
		{"RandomDAG(p=NaN)", builder.RandomDAG(3, math.NaN()), builder.ErrInvalidProbability},
		{"RandomDAG(no rng)", builder.RandomDAG(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestBuilders_CollidingConstructorsSurfaceCoreErrors(t *testing.T) {
	// Two Path(3) constructors over the same IDs try to add 0→1 twice.
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(3))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph[string] {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithName("fixture")},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(-5, 5)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(7), build(7)
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, "fixture", a.Name())

	c := build(8)
	assert.NotEqual(t, a.Edges(), c.Edges(), "different seeds should differ")
}

func TestBuilders_IDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPrefixIDs("v")}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
}
