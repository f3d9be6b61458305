package render

import (
	"math"

	"github.com/paulmach/orb"
)

// viewport maps graph coordinates to pixels: uniform scale, centred in
// the area inside the margin, y flipped so larger y is drawn higher.
type viewport struct {
	min        orb.Point
	scale      float64
	offX, offY float64
	height     int
}

func newViewport(b orb.Bound, width, height int, margin float64) viewport {
	bw, bh := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	availW := math.Max(float64(width)-2*margin, 1)
	availH := math.Max(float64(height)-2*margin, 1)

	var scale float64
	switch {
	case bw == 0 && bh == 0:
		scale = 1
	case bw == 0:
		scale = availH / bh
	case bh == 0:
		scale = availW / bw
	default:
		scale = math.Min(availW/bw, availH/bh)
	}

	return viewport{
		min:    b.Min,
		scale:  scale,
		offX:   margin + (availW-bw*scale)/2,
		offY:   margin + (availH-bh*scale)/2,
		height: height,
	}
}

// project returns the pixel position of p.
func (v viewport) project(p orb.Point) (x, y float64) {
	x = v.offX + (p.X()-v.min.X())*v.scale
	y = float64(v.height) - (v.offY + (p.Y()-v.min.Y())*v.scale)

	return x, y
}
