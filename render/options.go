package render

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dijkstraviz/dijkstra"
)

const (
	defaultWidth      = 640
	defaultHeight     = 480
	defaultMargin     = 48
	defaultFrameDelay = 800 * time.Millisecond
)

// Option configures rendering.
type Option func(*config)

type config struct {
	width, height int
	margin        float64
	title         string
	distances     dijkstra.Distances
	frameDelay    time.Duration
}

func newConfig(opts ...Option) config {
	cfg := config{
		width:      defaultWidth,
		height:     defaultHeight,
		margin:     defaultMargin,
		frameDelay: defaultFrameDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets the image size in pixels. Panics unless both are positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%d, %d): dimensions must be positive", width, height))
	}

	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithMargin sets the blank border around the drawing. Panics if negative.
func WithMargin(px float64) Option {
	if px < 0 {
		panic(fmt.Sprintf("render: WithMargin(%g): margin must be non-negative", px))
	}

	return func(c *config) { c.margin = px }
}

// WithTitle prints a caption in the top-left corner (PNG) or as the graph
// label (DOT).
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithDistances annotates every vertex with its distance in d.
func WithDistances(d dijkstra.Distances) Option {
	return func(c *config) { c.distances = d }
}

// WithFrameDelay sets the per-frame delay of GIF animations.
// Panics if d is not positive.
func WithFrameDelay(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("render: WithFrameDelay(%v): delay must be positive", d))
	}

	return func(c *config) { c.frameDelay = d }
}
