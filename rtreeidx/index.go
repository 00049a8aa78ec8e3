package rtreeidx

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/lvtopo/geomcore"
)

// Entry is anything that can be indexed: topo's *Edge and *Face both expose
// their current bounding box this way.
type Entry interface {
	Bounds() geomcore.Box
}

// boundsAdapter makes an Entry satisfy rtreego.Spatial without the topo
// package importing rtreego directly (keeping rtreego contained to this one
// wrapper, the way ChartEntry.Bounds() is the only rtreego-aware method in
// beetlebugorg-s57's index.go).
type boundsAdapter struct {
	Entry
}

func (a boundsAdapter) Bounds() rtreego.Rect {
	b := a.Entry.Bounds()
	lengths := []float64{
		maxf(b.MaxX-b.MinX, minSpan),
		maxf(b.MaxY-b.MinY, minSpan),
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, lengths)
	return rect
}

// minSpan keeps rtreego.NewRect happy for degenerate (point) boxes, which it
// rejects as zero-length rectangles.
const minSpan = 1e-9

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Index pairs a *rtreego.Rtree with the Entry values currently stored in it,
// so Remove can find the wrapper it inserted without the caller having to
// keep one around.
type Index struct {
	tree    *rtreego.Rtree
	wrapped map[Entry]boundsAdapter
}

// New builds an empty 2-dimensional R-tree with the branching factors
// beetlebugorg-s57 uses for its chart index (min 25, max 50 children per
// node) — a reasonable default for the edge/face counts a planar topology
// held in memory is expected to reach.
func New() *Index {
	return &Index{
		tree:    rtreego.NewTree(2, 25, 50),
		wrapped: make(map[Entry]boundsAdapter),
	}
}

// Insert adds e to the index using its current bounds.
func (idx *Index) Insert(e Entry) {
	w := boundsAdapter{e}
	idx.wrapped[e] = w
	idx.tree.Insert(w)
}

// Remove deletes e from the index. The tree locates the entry through e's
// current bounds, so Remove must run before those bounds change. Safe to
// call even if e was never inserted.
func (idx *Index) Remove(e Entry) {
	w, ok := idx.wrapped[e]
	if !ok {
		return
	}
	idx.tree.Delete(w)
	delete(idx.wrapped, e)
}

// Replace removes e and immediately reinserts it; both steps read e's
// current bounds, so Replace does not bracket a bounds change. A caller that
// changes bounds calls Remove, mutates, then calls Insert — see doc.go.
func (idx *Index) Replace(e Entry) {
	idx.Remove(e)
	idx.Insert(e)
}

// Query returns every entry whose indexed bounding box intersects box.
func (idx *Index) Query(box geomcore.Box) []Entry {
	lengths := []float64{
		maxf(box.MaxX-box.MinX, minSpan),
		maxf(box.MaxY-box.MinY, minSpan),
	}
	rect, err := rtreego.NewRect(rtreego.Point{box.MinX, box.MinY}, lengths)
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	out := make([]Entry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(boundsAdapter).Entry)
	}
	return out
}

// Len reports how many entries are currently indexed (I7's "exactly the live
// edges/faces" is checked against this in tests).
func (idx *Index) Len() int {
	return len(idx.wrapped)
}
