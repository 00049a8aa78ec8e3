package topo

// NodeID, EdgeID and FaceID identify records within a single Topology.
// IDs are never reused within a Topology's lifetime (they come from
// monotonic atomic counters in container.go), the same "nextEdgeID()" idiom
// lvlath/core/methods_edges.go uses, adapted from string IDs ("e1", "e2", …)
// to signed integers because sid() (below) needs a value it can negate.
type (
	NodeID int
	EdgeID int
	FaceID int
)

// NoEdge is the sentinel EdgeID meaning "no half-edge linked yet" (spec.md
// §3, "Sentinel values").
const NoEdge EdgeID = 0

// UnknownFace is the sentinel FaceID meaning "face not yet derived" (spec.md
// §3). UniverseFace is the distinguished, never-deleted outside face; a
// fresh Topology creates it during New.
const (
	UnknownFace  FaceID = -1
	UniverseFace FaceID = 1
)

// SignedHalfEdge implements spec.md §4.1's sid(e, d): the directed half-edge
// identifier used in diagnostics and as a compact traversal key. d==true
// means the half-edge is traversed start→end.
func SignedHalfEdge(e EdgeID, d bool) int {
	if d {
		return int(e)
	}
	return -int(e)
}
