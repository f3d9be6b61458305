package main

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRun_TextTable(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(nil, &out, &logs))

	want := strings.Join([]string{
		"VERTEX  DIST  PREV",
		"s       0     -",
		"t       8     y",
		"x       9     t",
		"y       5     s",
		"z       7     y",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.Contains(t, logs.String(), "finalized=5")
	assert.NotContains(t, logs.String(), "relax", "debug lines need -v")
}

func TestRun_YAML(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-format", "yaml", "-source", "x"}, &out, &logs))

	var got struct {
		Source    string `yaml:"source"`
		Finalized int    `yaml:"finalized"`
		Vertices  []struct {
			Vertex      string  `yaml:"vertex"`
			Distance    float64 `yaml:"distance"`
			Predecessor string  `yaml:"predecessor"`
		} `yaml:"vertices"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "x", got.Source)
	assert.Equal(t, 2, got.Finalized)
	require.Len(t, got.Vertices, 5)
	assert.Equal(t, "s", got.Vertices[0].Vertex)
	assert.True(t, got.Vertices[0].Distance > 1e308, "unreachable encodes as .inf")
	assert.Equal(t, 6.0, got.Vertices[4].Distance)
	assert.Equal(t, "x", got.Vertices[4].Predecessor)
}

func TestRun_VerboseLogsHooks(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-v"}, &out, &logs))
	assert.Contains(t, logs.String(), "msg=finalize vertex=y dist=5")
	assert.Contains(t, logs.String(), "msg=relax from=s to=t dist=10")
}

func TestRun_Near(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-near", "1.9,1.2"}, &out, &logs))
	assert.Contains(t, out.String(), "nearest to 1.9,1.2: z\n")

	require.Error(t, run([]string{"-near", "1;2"}, &out, &logs))
	require.Error(t, run([]string{"-near", "a,2"}, &out, &logs))
}

func TestRun_Random(t *testing.T) {
	var a, b, logs bytes.Buffer
	args := []string{"-random", "10", "-seed", "7"}
	require.NoError(t, run(args, &a, &logs))
	require.NoError(t, run(args, &b, &logs))
	assert.Equal(t, a.String(), b.String(), "same seed, same output")
	assert.True(t, strings.HasPrefix(a.String(), "VERTEX"))
	assert.Contains(t, a.String(), "\n0 ")
}

func TestRun_Errors(t *testing.T) {
	var out, logs bytes.Buffer
	require.Error(t, run([]string{"-format", "json"}, &out, &logs))
	require.Error(t, run([]string{"-source", "nope"}, &out, &logs))
	require.Error(t, run([]string{"-random", "5", "-density", "2"}, &out, &logs))
	require.Error(t, run([]string{"-undefined"}, &out, &logs))
}

func TestRun_WritesRenderings(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "g.dot")
	png := filepath.Join(dir, "g.png")
	anim := filepath.Join(dir, "g.gif")

	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-dot", dot, "-png", png, "-gif", anim}, &out, &logs))

	raw, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `label="dijkstra from s";`)
	assert.Contains(t, string(raw), `"x" [pos="2,0!", xlabel="9"];`)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	f, err := os.Open(anim)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 6)

	require.Error(t, run([]string{"-png", filepath.Join(dir, "missing", "g.png")}, &out, &logs))
}
