package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/core"
)

func TestValue_Kinds(t *testing.T) {
	n := core.Number(2.5)
	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)
	_, ok = n.Text()
	assert.False(t, ok)
	assert.Equal(t, "2.5", n.String())

	s := core.String("red")
	txt, ok := s.Text()
	assert.True(t, ok)
	assert.Equal(t, "red", txt)
	assert.Equal(t, core.KindString, s.Kind())

	b := core.Bool(true)
	truth, ok := b.Truth()
	assert.True(t, ok)
	assert.True(t, truth)
	assert.Equal(t, true, b.Interface())

	var zero core.Value
	assert.False(t, zero.IsValid())
	assert.Nil(t, zero.Interface())
	assert.Equal(t, "invalid", zero.Kind().String())
}

func TestValueOf(t *testing.T) {
	cases := []struct {
		in   any
		want core.Value
	}{
		{3, core.Number(3)},
		{int64(-4), core.Number(-4)},
		{float32(0.5), core.Number(0.5)},
		{"x", core.String("x")},
		{false, core.Bool(false)},
		{core.Number(1), core.Number(1)},
	}
	for _, tc := range cases {
		got, err := core.ValueOf(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := core.ValueOf([]int{1})
	require.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = core.ValueOf(core.Value{})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestAttrOptions_RejectBadWeight(t *testing.T) {
	g := core.NewGraph[string]()
	_, err := g.AddVertex(VertexA, core.WithVertexAttr("weight", core.Bool(true)))
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.False(t, g.HasVertex(VertexA))

	err = g.AddEdge(VertexA, VertexB, core.WithEdgeAttrs(core.Attrs{"weight": core.String("w")}))
	require.ErrorIs(t, err, core.ErrInvalidInput)
	require.Zero(t, g.Order())
}

func TestAttrs_CloneIsIndependent(t *testing.T) {
	a := core.Attrs{"k": core.Number(1)}
	c := a.Clone()
	c["k"] = core.Number(2)
	assert.Equal(t, core.Number(1), a["k"])

	var nilAttrs core.Attrs
	assert.NotNil(t, nilAttrs.Clone())
}

func TestPair(t *testing.T) {
	p := core.Pair[int]{From: 1, To: 2}
	assert.Equal(t, core.Pair[int]{From: 2, To: 1}, p.Reverse())
	assert.Equal(t, "(1,2)", p.String())
}
