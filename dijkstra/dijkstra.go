package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dijkstraviz/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g and records a distance snapshot at each finalization.
//
// Returns:
//
//   - dist:    every vertex name → Finite(shortest distance) or Inf().
//   - prev:    every vertex name → predecessor on a shortest path, "" for
//     the source and for unreachable vertices.
//   - history: one snapshot per finalized vertex, plus a final one equal
//     to dist.
//   - err:     a sentinel error (possibly wrapped) on invalid input.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// The graph is only read. Calling Dijkstra twice on an unmodified graph
// yields identical results.
func Dijkstra(g *core.Graph, opts ...Option) (Distances, Predecessors, History, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan for negative weights; the lazy heap cannot settle them.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	names := g.Names()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(Distances, len(names)),
		prev:    make(Predecessors, len(names)),
		pq:      make(nodePQ, 0, len(names)),
	}
	r.init(names)
	r.process()

	return r.dist, r.prev, r.history, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // read-only input
	options Options      // resolved configuration
	dist    Distances    // live distance map, mutated in place
	prev    Predecessors // live predecessor map
	history History      // append-only snapshots
	pq      nodePQ       // lazy min-heap
}

// init sets every distance to Inf, every predecessor to none, and seeds
// the heap with (0, Source).
func (r *runner) init(names []string) {
	for _, v := range names {
		r.dist[v] = Inf()
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = Finite(0)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops until the heap is empty (or MaxDistance is exceeded),
// snapshotting and relaxing every non-stale entry, then takes the final
// snapshot.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: a better distance was recorded after this push.
		if recorded, _ := r.dist[u].Value(); d > recorded {
			continue
		}

		// Everything still queued is at least as far as d.
		if d > r.options.MaxDistance {
			break
		}

		r.history = append(r.history, r.dist.Clone())
		r.options.OnFinalize(u, Finite(d))

		r.relax(u, d)
	}

	r.history = append(r.history, r.dist.Clone())
}

// relax tries every neighbor of u in adjacency order. The weight used for
// u→v is always the first-added edge between them.
func (r *runner) relax(u string, d float64) {
	for _, v := range r.g.AdjacentVertices(u) {
		w, ok := r.g.WeightBetween(u, v)
		if !ok {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		candidate := Finite(d + w)
		if candidate.Float() > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if !candidate.Less(r.dist[v]) {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		r.options.OnRelax(u, v, candidate)
		heap.Push(&r.pq, &nodeItem{id: v, dist: d + w})
	}
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
