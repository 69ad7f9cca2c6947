package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplegraph/builder"
	"github.com/katalvlaran/simplegraph/core"
)

const cliqueNet = `#E
1,2
1,3
1,4
1,5
2,3
2,4
3,4
4,5
`

const weightedNet = `#E
s,u,10
s,x,5
u,v,1
u,x,2
x,u,3
x,v,9
x,y,2
v,y,4
y,s,7
y,v,6
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummary(t *testing.T) {
	path := writeFile(t, "net.txt", cliqueNet+"#V\nlonely\n")

	out, err := run(t, "summary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices      6")
	assert.Contains(t, out, "edges         8")
	assert.Contains(t, out, "connected     false")
	assert.Contains(t, out, "isolated      lonely")
}

func TestSummary_YAML(t *testing.T) {
	path := writeFile(t, "net.txt", cliqueNet)

	out, err := run(t, "summary", "--format", "yaml", path)
	require.NoError(t, err)

	var doc summaryDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 5, doc.Vertices)
	assert.Equal(t, 8, doc.Edges)
	assert.InDelta(t, 16.0, doc.TotalWeight, 1e-9)
	assert.InDelta(t, 0.8, doc.Density, 1e-9)
	assert.True(t, doc.Connected)
	assert.Equal(t, 1, doc.Components)
}

func TestPath(t *testing.T) {
	path := writeFile(t, "net.txt", "a,b\nb,c\na,c\n")

	out, err := run(t, "path", path, "a", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "a -> b -> c")

	out, err = run(t, "path", "--all", path, "a", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "2     a -> b -> c")
	assert.Contains(t, out, "1     a -> c")

	_, err = run(t, "path", path, "a", "zz")
	assert.Error(t, err)
}

func TestDiameter(t *testing.T) {
	path := writeFile(t, "net.txt", "a,b\nb,c\nc,d\n")
	out, err := run(t, "diameter", path)
	require.NoError(t, err)
	assert.Contains(t, out, "diameter  3")

	split := writeFile(t, "split.txt", "a,b\nc,d\n")
	out, err = run(t, "diameter", "--format", "yaml", split)
	require.NoError(t, err)
	assert.Equal(t, "diameter: inf\n", out)
}

func TestComponents(t *testing.T) {
	path := writeFile(t, "net.txt", "a,b\nb,c\nx,y\n")
	out, err := run(t, "components", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "a b c")
	assert.Contains(t, lines[2], "x y")
}

func TestBetweenness_DirectedEdges(t *testing.T) {
	path := writeFile(t, "net.txt", weightedNet)

	out, err := run(t, "betweenness", "--directed", "--normalized=false", "--edges", "--top", "3", "--format", "yaml", path)
	require.NoError(t, err)

	var doc struct {
		Edges []edgeScore `yaml:"edges"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Edges, 3)
	assert.Equal(t, edgeScore{From: "s", To: "x", Score: 8}, doc.Edges[0])
	assert.Equal(t, edgeScore{From: "y", To: "s", Score: 8}, doc.Edges[1])
	assert.Equal(t, edgeScore{From: "x", To: "u", Score: 6}, doc.Edges[2])
}

func TestBetweenness_DirectedFromEnvironment(t *testing.T) {
	t.Setenv("GRAPHSTAT_DIRECTED", "true")
	path := writeFile(t, "net.txt", weightedNet)

	out, err := run(t, "betweenness", "--normalized=false", "--top", "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "x       7")
}

func TestCliques(t *testing.T) {
	path := writeFile(t, "net.txt", cliqueNet)

	out, err := run(t, "cliques", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4     1 2 3 4")
	assert.Contains(t, out, "3     1 4 5")

	out, err = run(t, "cliques", "--max", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "1 4 5")
}

func TestExport_RoundTripsThroughYAML(t *testing.T) {
	src := writeFile(t, "net.txt", weightedNet)

	out, err := run(t, "export", "--directed", "--format", "yaml", src)
	require.NoError(t, err)
	assert.Contains(t, out, "directed: true")

	snapPath := writeFile(t, "net.yaml", out)
	text, err := run(t, "export", snapPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "#V,weight\ns,1\n"), text)
	assert.Contains(t, text, "#E,weight\ns,u,10\n")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "graphstat.yaml", "format: yaml\n")
	path := writeFile(t, "net.txt", "a,b\n")

	out, err := run(t, "--config", cfg, "components", path)
	require.NoError(t, err)
	assert.Contains(t, out, "components:")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "summary", "--format", "xml", writeFile(t, "net.txt", "a,b\n"))
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "summary", writeFile(t, "bad.txt", "a,b,1,2\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = run(t, "summary", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("a,b\n"))
	cmd.SetArgs([]string{"components", "-"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "a b")
}

func TestVerboseBuildsLogger(t *testing.T) {
	path := writeFile(t, "net.txt", "a,b\n")
	out, err := run(t, "--verbose", "components", path)
	require.NoError(t, err)
	assert.Contains(t, out, "a b")
}

func TestVerboseLogFile(t *testing.T) {
	path := writeFile(t, "net.txt", "a,b\nb,c\n")
	logPath := filepath.Join(t.TempDir(), "graphstat.log")

	_, err := run(t, "--verbose", "--log-file", logPath, "summary", path)
	require.NoError(t, err)

	body, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "graph loaded")
	assert.Contains(t, string(body), "graphstat")
}

func TestGenerate_FeedsSummary(t *testing.T) {
	out, err := run(t, "generate", "wheel", "6")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "#V,weight\n"), out)

	path := writeFile(t, "wheel.txt", out)
	out, err = run(t, "summary", "--format", "yaml", path)
	require.NoError(t, err)
	var doc summaryDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 6, doc.Vertices)
	assert.Equal(t, 10, doc.Edges)
	assert.True(t, doc.Connected)
}

func TestGenerate_SeededRandomIsStable(t *testing.T) {
	args := []string{"generate", "random", "12", "--p", "0.3", "--seed", "9", "--max-weight", "5", "--format", "yaml"}
	a, err := run(t, args...)
	require.NoError(t, err)
	b, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "directed: false")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := run(t, "generate", "hexagon", "3")
	assert.ErrorContains(t, err, "unknown topology")

	_, err = run(t, "generate", "grid", "3")
	assert.ErrorContains(t, err, "size argument")

	_, err = run(t, "generate", "cycle", "two")
	assert.Error(t, err)

	_, err = run(t, "generate", "random", "5", "--p", "0.5")
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestSummary_LargeCountsAreGrouped(t *testing.T) {
	out, err := run(t, "generate", "grid", "40", "30")
	require.NoError(t, err)
	path := writeFile(t, "grid.txt", out)

	out, err = run(t, "summary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices      1,200")
	assert.Contains(t, out, "edges         2,330")
}
