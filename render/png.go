package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/dijkstraviz/core"
)

const (
	nodeRadius    = 18.0
	outlineWidth  = 2.0
	edgeHalfWidth = 1.0
	edgeOffset    = 4.0 // antiparallel edges are drawn side by side
	arrowLength   = 10.0
	arrowHalfBase = 5.0
	loopRadius    = 8.0
	circleSteps   = 48
)

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorEdge       = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorNodeFill   = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colorOutline    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorText       = color.RGBA{A: 255}
	colorReached    = color.RGBA{R: 0, G: 110, B: 40, A: 255}
	colorUnreached  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// PNG renders g and encodes it as PNG into w.
func PNG(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return errors.New("render: graph is nil")
	}
	img := Image(g, opts...)

	return errors.Wrap(png.Encode(w, img), "render: encode png")
}

// Image renders g into a new RGBA image.
func Image(g *core.Graph, opts ...Option) *image.RGBA {
	cfg := newConfig(opts...)
	c := newCanvas(cfg.width, cfg.height)
	vp := newViewport(g.Bound(), cfg.width, cfg.height, cfg.margin)

	names, positions := g.Vertices(), g.Positions()
	px := make(map[string][2]float64, len(names))
	for i, name := range names {
		x, y := vp.project(positions[i])
		px[name] = [2]float64{x, y}
	}

	type label struct {
		text string
		x, y float64
	}
	var weightLabels []label

	// 1) Edges underneath everything else.
	for _, e := range g.Edges() {
		a, b := px[e.From], px[e.To]
		if e.From == e.To {
			cx, cy := a[0], a[1]-nodeRadius-loopRadius+2
			c.ring(cx, cy, loopRadius, outlineWidth, colorEdge)
			weightLabels = append(weightLabels, label{formatFloat(e.Weight), cx, cy - loopRadius - 6})
			continue
		}
		if lx, ly, ok := c.arrow(a, b, colorEdge); ok {
			weightLabels = append(weightLabels, label{formatFloat(e.Weight), lx, ly})
		}
	}

	// 2) Vertices and their names.
	for _, name := range names {
		p := px[name]
		c.disc(p[0], p[1], nodeRadius, colorNodeFill)
		c.ring(p[0], p[1], nodeRadius, outlineWidth, colorOutline)
		c.text(name, p[0], p[1], colorText, false)
	}

	// 3) Labels on top.
	for _, l := range weightLabels {
		c.text(l.text, l.x, l.y, colorText, true)
	}
	if cfg.distances != nil {
		for _, name := range names {
			d, ok := cfg.distances[name]
			if !ok {
				continue
			}
			col := colorReached
			if d.IsInf() {
				col = colorUnreached
			}
			p := px[name]
			c.text("d="+d.String(), p[0], p[1]+nodeRadius+10, col, false)
		}
	}
	if cfg.title != "" {
		c.textAt(cfg.title, 8, 16, colorText)
	}

	return c.img
}

// canvas couples an RGBA image with a reusable rasterizer.
type canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

func newCanvas(w, h int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	return &canvas{img: img, r: vector.NewRasterizer(w, h)}
}

// fill rasterizes the path built by fn with a solid colour.
func (c *canvas) fill(col color.Color, fn func(r *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	c.r.DrawOp = draw.Over
	fn(c.r)
	c.r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func circlePath(r *vector.Rasterizer, cx, cy, radius float64, reverse bool) {
	for i := 0; i <= circleSteps; i++ {
		k := i
		if reverse {
			k = circleSteps - i
		}
		theta := 2 * math.Pi * float64(k) / circleSteps
		x, y := float32(cx+radius*math.Cos(theta)), float32(cy+radius*math.Sin(theta))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

func (c *canvas) disc(cx, cy, radius float64, col color.Color) {
	c.fill(col, func(r *vector.Rasterizer) { circlePath(r, cx, cy, radius, false) })
}

// ring draws a circle outline of the given width, inside radius.
// The inner contour runs the opposite way so its area cancels out.
func (c *canvas) ring(cx, cy, radius, width float64, col color.Color) {
	c.fill(col, func(r *vector.Rasterizer) {
		circlePath(r, cx, cy, radius, false)
		circlePath(r, cx, cy, radius-width, true)
	})
}

// arrow draws a directed edge between two vertex centres, trimmed to the
// node discs and shifted to its right-hand side. It returns where the
// weight label belongs; ok is false if the discs overlap.
func (c *canvas) arrow(a, b [2]float64, col color.Color) (lx, ly float64, ok bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	length := math.Hypot(dx, dy)
	if length <= 2*nodeRadius+arrowLength {
		return 0, 0, false
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	sx, sy := a[0]+ux*nodeRadius+nx*edgeOffset, a[1]+uy*nodeRadius+ny*edgeOffset
	tx, ty := b[0]-ux*(nodeRadius+1)+nx*edgeOffset, b[1]-uy*(nodeRadius+1)+ny*edgeOffset
	bx, by := tx-ux*arrowLength, ty-uy*arrowLength

	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(float32(sx+nx*edgeHalfWidth), float32(sy+ny*edgeHalfWidth))
		r.LineTo(float32(bx+nx*edgeHalfWidth), float32(by+ny*edgeHalfWidth))
		r.LineTo(float32(bx-nx*edgeHalfWidth), float32(by-ny*edgeHalfWidth))
		r.LineTo(float32(sx-nx*edgeHalfWidth), float32(sy-ny*edgeHalfWidth))
		r.ClosePath()

		r.MoveTo(float32(tx), float32(ty))
		r.LineTo(float32(bx+nx*arrowHalfBase), float32(by+ny*arrowHalfBase))
		r.LineTo(float32(bx-nx*arrowHalfBase), float32(by-ny*arrowHalfBase))
		r.ClosePath()
	})

	mx, my := (sx+tx)/2, (sy+ty)/2

	return mx + nx*(edgeOffset+8), my + ny*(edgeOffset+8), true
}

// text draws s centred on (cx, cy), optionally over a white box.
func (c *canvas) text(s string, cx, cy float64, col color.Color, boxed bool) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	x := int(math.Round(cx)) - width/2
	baseline := int(math.Round(cy)) + 4

	if boxed {
		box := image.Rect(x-2, baseline-11, x+width+2, baseline+3)
		draw.Draw(c.img, box, image.NewUniform(colorBackground), image.Point{}, draw.Src)
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// textAt draws s with its baseline starting at (x, y).
func (c *canvas) textAt(s string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
