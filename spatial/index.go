// Package spatial indexes vertex positions of a core.Graph in an R-tree so
// renderers and tools can locate vertices by coordinates.
package spatial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/dijkstraviz/core"
)

// ErrNilGraph is returned by NewIndex for a nil graph.
var ErrNilGraph = errors.New("spatial: graph is nil")

// pointTol is the half-width of the box stored for each point; rtreego
// rejects zero-length rectangles.
const pointTol = 1e-9

// entry wraps a vertex for R-tree storage.
type entry struct {
	name  string
	index int
	pos   orb.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index answers nearest-vertex and region queries.
// It is a snapshot: vertices added to the graph later are not seen.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an Index over every currently registered vertex name.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, name := range g.Names() {
		i, _ := g.Index(name)
		pos := g.Vertex(i).Pos
		bbox, err := rtreego.NewRect(
			rtreego.Point{pos.X() - pointTol, pos.Y() - pointTol},
			[]float64{2 * pointTol, 2 * pointTol},
		)
		if err != nil {
			return nil, fmt.Errorf("spatial: vertex %q at %v: %w", name, pos, err)
		}
		tree.Insert(&entry{name: name, index: i, pos: pos, bbox: bbox})
	}

	return &Index{tree: tree}, nil
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.tree.Size() }

// Nearest returns up to k vertex names closest to p, nearest first.
// Equal distances are ordered by insertion index.
func (ix *Index) Nearest(p orb.Point, k int) []string {
	if k > ix.tree.Size() {
		k = ix.tree.Size()
	}
	if k <= 0 {
		return nil
	}

	found := ix.tree.NearestNeighbors(k, rtreego.Point{p.X(), p.Y()})
	entries := make([]*entry, 0, len(found))
	for _, s := range found {
		if e, ok := s.(*entry); ok && e != nil {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := planar.Distance(p, entries[i].pos), planar.Distance(p, entries[j].pos)
		if di != dj {
			return di < dj
		}

		return entries[i].index < entries[j].index
	})

	return names(entries)
}

// Within returns the vertices whose position lies inside b, by insertion index.
func (ix *Index) Within(b orb.Bound) []string {
	w, h := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if w < 0 || h < 0 {
		return nil
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X() - pointTol, b.Min.Y() - pointTol},
		[]float64{w + 2*pointTol, h + 2*pointTol},
	)
	if err != nil {
		return nil
	}

	var entries []*entry
	for _, s := range ix.tree.SearchIntersect(rect) {
		if e, ok := s.(*entry); ok && b.Contains(e.pos) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	return names(entries)
}

func names(entries []*entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}

	return out
}
