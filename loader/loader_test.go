package loader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/loader"
)

const sample = `# people and their links
x y
#V,weight,color
a,2,red
b
a,9,blue
#E
a,b,3
#E weight,label,active
b,c,,friend,true
c a 4
`

func TestLoad_Sample(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, loader.Load(strings.NewReader(sample), g))

	assert.Equal(t, []string{"x", "y", "a", "b", "c"}, g.Vertices())

	va, ok := g.Vertex("a")
	require.True(t, ok)
	assert.Equal(t, 2.0, va.Weight, "first vertex write wins")
	assert.Equal(t, core.String("red"), va.Attrs["color"])

	w, ok := g.EdgeWeight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	bc, ok := g.Edge("b", "c")
	require.True(t, ok)
	assert.Equal(t, 1.0, bc.Weight, "empty weight column falls back to the default")
	assert.Equal(t, "friend", bc.Label)
	assert.Equal(t, core.Bool(true), bc.Attrs["active"])

	w, ok = g.EdgeWeight("c", "a")
	require.True(t, ok)
	assert.Equal(t, 4.0, w)

	assert.True(t, g.HasEdge("x", "y"), "rows before any marker are edges")
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"single label edge":  "a\n",
		"too many columns":   "a,b,1,2\n",
		"empty header name":  "#V,weight,,color\n",
		"non-numeric weight": "#V\na,heavy\n",
		"empty vertex label": "#V\n,2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := loader.Load(strings.NewReader(in), core.NewGraph[string]())
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestLoad_CommentsAreNotMarkers(t *testing.T) {
	g := core.NewGraph[string]()
	in := "#Vertices follow later\n#\na,b\n"
	require.NoError(t, loader.Load(strings.NewReader(in), g))
	assert.True(t, g.HasEdge("a", "b"))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, core.Number(2.5), loader.ParseValue("2.5"))
	assert.Equal(t, core.Number(-3), loader.ParseValue("-3"))
	assert.Equal(t, core.Bool(false), loader.ParseValue("false"))
	assert.Equal(t, core.String("True"), loader.ParseValue("True"))
	assert.Equal(t, core.String("red"), loader.ParseValue("red"))
}

func TestSnapshot_YAMLRoundTrip(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, loader.Load(strings.NewReader(sample), g))
	want := g.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, loader.EncodeSnapshot(&buf, want))
	assert.Contains(t, buf.String(), "directed: false")

	got, err := loader.DecodeSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	rebuilt, err := core.FromSnapshot(got)
	require.NoError(t, err)
	assert.Equal(t, want, rebuilt.Snapshot())
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	_, err := loader.DecodeSnapshot(strings.NewReader("V:\n  - label: a\n    attrs: {tags: [x, y]}\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = loader.DecodeSnapshot(strings.NewReader("vertices: []\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	snap, err := loader.DecodeSnapshot(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.V)
}

func TestDump_ReloadsToSameSnapshot(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, loader.Load(strings.NewReader(sample), g))
	want := g.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, loader.Dump(&buf, want))
	assert.True(t, strings.HasPrefix(buf.String(), "#V,weight,color\nx,1,\n"), buf.String())
	assert.Contains(t, buf.String(), "#E,weight,active,label\n")
	assert.Contains(t, buf.String(), "b,c,1,true,friend\n")

	again := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, loader.Load(&buf, again))
	assert.Equal(t, want, again.Snapshot())
}

func TestDump_RejectsUnwritableColumns(t *testing.T) {
	snap := core.Snapshot[string]{
		V: []core.VertexEntry[string]{{Label: "a,b", Attrs: core.Attrs{"weight": core.Number(1)}}},
	}
	err := loader.Dump(&bytes.Buffer{}, snap)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	snap = core.Snapshot[string]{
		V: []core.VertexEntry[string]{{Label: "a", Attrs: core.Attrs{"note": core.String("#x")}}},
	}
	err = loader.Dump(&bytes.Buffer{}, snap)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
