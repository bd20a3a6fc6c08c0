package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Labels())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	}, g.Edges())
}

func TestCycleAndStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("2", "0"))

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(5)}, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, []string{builder.CenterVertexID, "1", "2", "3"}, g.Labels())
	w, ok := g.Weight("3", builder.CenterVertexID)
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(5)}, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

// TestComposeReusesVertices: a cycle laid over a path shares its vertices.
func TestComposeReusesVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4), builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestRandomSparseDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(0, 9), builder.WithPrefixIDs("v")}

	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	opts[0] = builder.WithSeed(7)
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a.Labels(), b.Labels())
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, "v19", a.Labels()[19])
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.Equal(t, float64(int(e.Weight)), e.Weight)
	}
}

func TestUniformWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(0.5, 2.5)},
		builder.Complete(6),
	)
	require.NoError(t, err)
	require.Equal(t, 15, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.5)
		assert.Less(t, e.Weight, 2.5)
	}

	// Without an RNG every edge gets the default weight.
	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUniformWeight(0.5, 2.5)}, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}
	assert.Panics(t, func() { builder.WithUniformWeight(2, 1) })
}

func TestRandomSparseExtremes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildGraphErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path too short", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too short", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star too short", builder.Star(1), builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIDAndWeightFns(t *testing.T) {
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "n3", builder.PrefixIDFn("n")(3))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntWeightFn(2, 3)(nil))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.IntWeightFn(3, 2) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}
