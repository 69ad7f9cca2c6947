package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/builder"
	"github.com/katalvlaran/simplegraph/clique"
	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/dfs"
)

func TestTopologies_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Path(5)", builder.Path(5), 5, 4},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Wheel(6)", builder.Wheel(6), 6, 10},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			assert.InDelta(t, float64(2*tc.wantE), g.TotalEdgeWeight(), 1e-9)
		})
	}
}

func TestTopologies_DirectedMirrors(t *testing.T) {
	directed := []core.GraphOption{core.WithDirected(true)}

	g, err := builder.BuildGraph(directed, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.HasEdge("3", "0"))
	assert.False(t, g.HasEdge("0", "3"))

	g, err = builder.BuildGraph(directed, nil, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Size())
	assert.True(t, g.HasEdge("3", "Center"))
}

func TestBuildGraph_LabelsAndComposition(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn), builder.WithPartitionPrefix("", "")},
		builder.Wheel(5),
		builder.CompleteBipartite(1, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "Center", "L0", "R0"}, g.Vertices())
	assert.True(t, g.HasEdge("Center", "D"))
	assert.True(t, g.HasEdge("L0", "R0"))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))}

	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	for _, e := range a.EdgeRecords() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0+1e-9)
	}
}

func TestConstructors_Errors(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"path":      builder.Path(1),
		"cycle":     builder.Cycle(2),
		"star":      builder.Star(1),
		"wheel":     builder.Wheel(3),
		"complete":  builder.Complete(0),
		"bipartite": builder.CompleteBipartite(0, 2),
		"grid":      builder.Grid(0, 3),
		"sparse":    builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

func TestIDAndWeightFns(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))

	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 4)(nil))
	w := builder.UniformWeightFn(2, 4)(rand.New(rand.NewSource(1)))
	assert.True(t, w >= 2 && w <= 4, "w=%g", w)
}

func TestGeneratedGraphsFeedAlgorithms(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	cliques, err := clique.FindCliques(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2", "3", "4"}}, cliques)

	p, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)
	assert.Equal(t, 5, dfs.Diameter(p))
}

func TestGrid_Labels(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0:0", "0:1", "1:0", "1:1"}, g.Vertices())
	assert.True(t, g.HasEdge("0:0", "1:0"))
	assert.False(t, g.HasEdge("0:0", "1:1"))
}
