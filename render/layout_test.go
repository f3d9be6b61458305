package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/core"
)

func TestViewport_FitsAndFlips(t *testing.T) {
	b := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}
	vp := newViewport(b, 640, 480, 48)

	// Width-bound: 544px for 2 units.
	assert.Equal(t, 272.0, vp.scale)

	x, y := vp.project(orb.Point{0, 0})
	assert.Equal(t, 48.0, x)
	assert.Equal(t, 376.0, y)

	x, y = vp.project(orb.Point{2, 1})
	assert.Equal(t, 592.0, x)
	assert.Equal(t, 104.0, y, "larger y is drawn higher")
}

func TestViewport_Degenerate(t *testing.T) {
	vp := newViewport(orb.Bound{Min: orb.Point{3, 3}, Max: orb.Point{3, 3}}, 100, 100, 10)
	x, y := vp.project(orb.Point{3, 3})
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 50.0, y)

	vp = newViewport(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 0}}, 100, 100, 10)
	x, y = vp.project(orb.Point{4, 0})
	assert.Equal(t, 90.0, x)
	assert.Equal(t, 50.0, y)
}

func TestImage_NodeAndBackgroundPixels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", 0, 0))
	require.NoError(t, g.AddVertex("b", 2, 1))
	require.NoError(t, g.AddEdge("a", "b", 1))

	img := Image(g)

	// Inside a's disc, left of its label: node fill.
	assert.Equal(t, colorNodeFill, img.RGBAAt(48-10, 376))
	// Far corner: background.
	assert.Equal(t, colorBackground, img.RGBAAt(630, 470))
}
