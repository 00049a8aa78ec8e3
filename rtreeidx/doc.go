// Package rtreeidx wraps github.com/dhconnelly/rtreego to give topo's edges
// and faces R-tree the one operation neither rtreego nor spec.md spells out
// explicitly but every mutation needs: updating an object whose bounds have
// changed. rtreego locates an object to delete by re-deriving its bounds from
// Spatial.Bounds() and walking the tree, so an object must be removed before
// its bounds change and reinserted after: call sites use Index.Remove before
// the change and Index.Insert after it.
//
// Grounded on beetlebugorg-s57/pkg/s57/index.go's ChartIndex: a
// *rtreego.Rtree paired with a Spatial adapter built from an axis-aligned
// box, queried with NewRect + SearchIntersect.
package rtreeidx
