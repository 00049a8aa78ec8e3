package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// Node is a point in the planar subdivision. An isolated node (no incident
// edges) carries the FaceID of the face that geometrically contains it; a
// non-isolated node carries no face (spec.md I6). Face/Isolated implement
// that discriminated union the way spec.md §9's design note asks for,
// without resorting to a nullable field.
type Node struct {
	ID         NodeID
	Coordinate geomcore.XY

	isolated bool
	face     FaceID // valid only when isolated
}

// Isolated reports whether n currently has zero incident edges.
func (n *Node) Isolated() bool { return n.isolated }

// Face returns the containing face and true if n is isolated; otherwise
// (FaceID(0), false).
func (n *Node) Face() (FaceID, bool) {
	if !n.isolated {
		return 0, false
	}
	return n.face, true
}

// Edge is a full edge: two half-edges sharing one coordinate sequence.
// Coords[0] equals Start's coordinate and Coords[len-1] equals End's
// (spec.md I1). NextLeft/NextLeftDir and NextRight/NextRightDir are the ring
// links: following them repeatedly returns to this edge (I3).
type Edge struct {
	ID     EdgeID
	Coords []geomcore.XY
	Start  NodeID
	End    NodeID

	LeftFace  FaceID
	RightFace FaceID

	NextLeft     EdgeID
	NextLeftDir  bool
	NextRight    EdgeID
	NextRightDir bool

	MinX, MinY, MaxX, MaxY float64
}

// Bounds implements rtreeidx.Entry.
func (e *Edge) Bounds() geomcore.Box {
	return geomcore.Box{MinX: e.MinX, MinY: e.MinY, MaxX: e.MaxX, MaxY: e.MaxY}
}

func (e *Edge) recomputeBounds() {
	b := geomcore.BoundsOf(e.Coords)
	e.MinX, e.MinY, e.MaxX, e.MaxY = b.MinX, b.MinY, b.MaxX, b.MaxY
}

// halfEdgeLink returns the (edge, dir) pair for this edge's left ring link
// when dir is true, or its right ring link when dir is false — the opposite
// side from whichever a caller is substituting away from when a ring
// pointer targeting this edge must be rewritten (remEdge step 2).
func (e *Edge) halfEdgeLink(dir bool) (EdgeID, bool) {
	if dir {
		return e.NextLeft, e.NextLeftDir
	}
	return e.NextRight, e.NextRightDir
}

// Face is a bounded or unbounded region of the subdivision. The universe
// face (UniverseFace) is never deleted.
type Face struct {
	ID  FaceID
	MBR geomcore.Box
	set bool // whether MBR has been computed at least once
}

// Bounds implements rtreeidx.Entry. The universe face has no finite bounds;
// addFaceSplit never indexes it (it's never queried spatially).
func (f *Face) Bounds() geomcore.Box {
	return f.MBR
}
