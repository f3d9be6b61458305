package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

// GIF animates history over g: frame i shows the distances of snapshot i.
// WithDistances is ignored; WithTitle prefixes every frame caption.
func GIF(w io.Writer, g *core.Graph, history dijkstra.History, opts ...Option) error {
	if g == nil {
		return errors.New("render: graph is nil")
	}
	if len(history) == 0 {
		return errors.New("render: empty history")
	}
	cfg := newConfig(opts...)
	delay := int(cfg.frameDelay.Milliseconds() / 10)
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{}
	for i, snap := range history {
		frameOpts := append(append([]Option(nil), opts...),
			WithDistances(snap),
			WithTitle(frameTitle(cfg.title, i, len(history))),
		)
		rgba := Image(g, frameOpts...)
		frame := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.Draw(frame, frame.Bounds(), rgba, rgba.Bounds().Min, draw.Src)

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	// Hold the final frame a little longer.
	anim.Delay[len(anim.Delay)-1] *= 3

	return errors.Wrap(gif.EncodeAll(w, anim), "render: encode gif")
}

// frameTitle captions frame i of n; the last frame is the final state.
func frameTitle(base string, i, n int) string {
	caption := "step " + strconv.Itoa(i+1) + "/" + strconv.Itoa(n)
	if i == n-1 {
		caption += " (final)"
	}
	if base != "" {
		caption = base + " - " + caption
	}

	return caption
}
