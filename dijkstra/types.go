package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that no source vertex name was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex name is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBrokenChain indicates a predecessor chain that does not lead back
	// to the source within the number of known vertices.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")
)

// Options configures a Dijkstra run.
//
// Source           – starting vertex name (required).
// MaxDistance      – vertices farther than this are neither finalized nor relaxed into.
//
//	Default +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are treated as impassable.
//
//	Default +Inf.
//
// OnFinalize       – called once per finalized vertex, after its snapshot is taken.
// OnRelax          – called whenever an edge u→v improves dist[v].
type Options struct {
	Source           string
	MaxDistance      float64
	InfEdgeThreshold float64
	OnFinalize       func(v string, d Distance)
	OnRelax          func(u, v string, d Distance)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex name.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithMaxDistance caps exploration: the run stops as soon as the closest
// pending vertex lies beyond max, and edges leading beyond max are not relaxed.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges whose weight is ≥ threshold as walls.
// Panics on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnFinalize registers a hook invoked for every finalized vertex with
// its settled distance. Panics on nil.
func WithOnFinalize(fn func(v string, d Distance)) Option {
	if fn == nil {
		panic("dijkstra: WithOnFinalize(nil)")
	}

	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithOnRelax registers a hook invoked for every successful relaxation
// u→v with the new distance of v. Panics on nil.
func WithOnRelax(fn func(u, v string, d Distance)) Option {
	if fn == nil {
		panic("dijkstra: WithOnRelax(nil)")
	}

	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns Options for the given source with no caps and
// no-op hooks.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnFinalize:       func(string, Distance) {},
		OnRelax:          func(string, string, Distance) {},
	}
}
