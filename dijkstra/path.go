package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// PathTo rebuilds the vertex sequence source → … → target by walking prev
// backwards from target.
//
// Errors:
//   - ErrVertexNotFound if target is not a key of prev.
//   - ErrNoPath if the chain ends before reaching source.
//   - ErrBrokenChain if the chain is longer than len(prev) (a cycle).
func PathTo(prev Predecessors, source, target string) ([]string, error) {
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}

	path := []string{target}
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps >= len(prev) {
			return nil, fmt.Errorf("%w: %s", ErrBrokenChain, target)
		}
		p, ok := prev.Of(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}

	// Reverse into source-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Result bundles the three outputs of one run with its source.
type Result struct {
	Source       string
	Distances    Distances
	Predecessors Predecessors
	History      History
}

// Run is Dijkstra returning a *Result.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	dist, prev, history, err := Dijkstra(g, opts...)
	if err != nil {
		return nil, err
	}
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Result{
		Source:       cfg.Source,
		Distances:    dist,
		Predecessors: prev,
		History:      history,
	}, nil
}

// PathTo rebuilds the shortest path from the run's source to target.
func (r *Result) PathTo(target string) ([]string, error) {
	return PathTo(r.Predecessors, r.Source, target)
}

// Finalized returns how many vertices were settled, i.e. len(History)-1.
func (r *Result) Finalized() int { return len(r.History) - 1 }
