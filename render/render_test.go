package render_test

import (
	"bytes"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/builder"
	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
	"github.com/katalvlaran/dijkstraviz/render"
)

func tinyGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", 0, 0))
	require.NoError(t, g.AddVertex("b", 1, 0.5))
	require.NoError(t, g.AddEdge("a", "b", 2.5))

	return g
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	err := render.DOT(&buf, tinyGraph(t),
		render.WithTitle("demo"),
		render.WithDistances(dijkstra.Distances{"a": dijkstra.Finite(0), "b": dijkstra.Inf()}),
	)
	require.NoError(t, err)

	want := `digraph G {
  label="demo";
  node [shape=circle, style=filled, fillcolor="lightblue"];
  "a" [pos="0,0!", xlabel="0"];
  "b" [pos="1,0.5!", xlabel="inf"];
  "a" -> "b" [label="2.5"];
}
`
	require.Equal(t, want, buf.String())
}

func TestDOT_QuotesNames(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(`say "hi"`, 0, 0))

	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, g))
	require.Contains(t, buf.String(), `"say \"hi\"" [pos="0,0!"];`)
}

func TestNilGraph(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, render.DOT(&buf, nil))
	require.Error(t, render.PNG(&buf, nil))
	require.Error(t, render.GIF(&buf, nil, dijkstra.History{{}}))
	require.Error(t, render.GIF(&buf, tinyGraph(t), nil))
}

func TestPNG_Reference(t *testing.T) {
	g := builder.NewReference()
	dist, _, _, err := dijkstra.Dijkstra(g, dijkstra.Source("s"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, g,
		render.WithSize(320, 240),
		render.WithDistances(dist),
		render.WithTitle("reference"),
	))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestGIF_OneFramePerSnapshot(t *testing.T) {
	g := builder.NewReference()
	_, _, history, err := dijkstra.Dijkstra(g, dijkstra.Source("s"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.GIF(&buf, g, history,
		render.WithSize(200, 150),
		render.WithFrameDelay(500*time.Millisecond),
	))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, len(history))
	assert.Equal(t, 50, anim.Delay[0])
	assert.Equal(t, 150, anim.Delay[len(anim.Delay)-1])
	assert.Equal(t, 200, anim.Image[0].Bounds().Dx())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithMargin(-1) })
	assert.Panics(t, func() { render.WithFrameDelay(0) })
}
