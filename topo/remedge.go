package topo

import "github.com/katalvlaran/lvtopo/geomcore"

func unionBox(a, b geomcore.Box) geomcore.Box {
	return geomcore.Box{
		MinX: minf(a.MinX, b.MinX),
		MinY: minf(a.MinY, b.MinY),
		MaxX: maxf2(a.MaxX, b.MaxX),
		MaxY: maxf2(a.MaxY, b.MaxY),
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// RemEdgeNewFace implements remEdge (spec.md §4.7) under the new-face
// policy: when removing a face-separating edge merges two faces, a fresh
// face is inserted as the flood target and both old faces are deleted —
// unless one of them is the universe, which then is the flood target and
// survives.
func (t *Topology) RemEdgeNewFace(e EdgeID) (FaceID, error) {
	return t.remEdge(e, false)
}

// RemEdgeModFace implements remEdge under the modify-face policy: the
// surviving face is one of the two old faces (oldRightFace), kept alive in
// place rather than replaced.
func (t *Topology) RemEdgeModFace(e EdgeID) (FaceID, error) {
	return t.remEdge(e, true)
}

func (t *Topology) remEdge(id EdgeID, modFace bool) (FaceID, error) {
	edge, err := t.edgeByID(id)
	if err != nil {
		return 0, err
	}

	oldLeftFace, oldRightFace := edge.LeftFace, edge.RightFace

	// Step 2: rewire every other edge incident to start/end whose ring
	// pointers target the vanishing edge, substituting the vanishing
	// edge's OPPOSITE half-edge — nextRight in place of a nextLeft
	// reference and vice versa (spec.md §9 flags a one-character typo in
	// an equivalent branch of the source this was ported from; both
	// branches here consistently read NextLeftDir/NextRightDir, which is
	// what "fixing it" amounts to with no literal typo to inherit).
	for _, oid := range t.GetEdgeByNode(edge.Start, edge.End) {
		if oid == id {
			continue
		}
		other, err := t.edgeByID(oid)
		if err != nil {
			return 0, err
		}
		if other.NextLeft == id {
			other.NextLeft, other.NextLeftDir = edge.halfEdgeLink(false)
		}
		if other.NextRight == id {
			other.NextRight, other.NextRightDir = edge.halfEdgeLink(true)
		}
	}

	// Step 3: count remaining incidence at each endpoint.
	fnodeEdges, lnodeEdges := 0, 0
	for _, oid := range t.GetEdgeByNode(edge.Start) {
		if oid != id {
			fnodeEdges++
		}
	}
	for _, oid := range t.GetEdgeByNode(edge.End) {
		if oid != id {
			lnodeEdges++
		}
	}

	// Step 4: determine the flood target.
	var floodface FaceID
	bridge := oldLeftFace == oldRightFace
	switch {
	case bridge:
		floodface = oldRightFace
	case oldLeftFace == t.universe || oldRightFace == t.universe:
		floodface = t.universe
	default:
		floodface = oldRightFace
	}

	var newface FaceID
	switch {
	case bridge:
		newface = floodface
	case floodface == t.universe:
		// The universe is never deleted or replaced (spec.md §3): whichever
		// policy is in effect, a removal that floods toward the universe
		// must land there, not at a freshly allocated face.
		newface = floodface
	case modFace:
		newface = floodface
	default:
		newface = t.nextFaceID()
		t.insertFace(&Face{ID: newface})
	}

	// Step 5: reassign face references away from the two vanishing faces.
	if !bridge {
		for _, e := range t.edges {
			if e.ID == id {
				continue
			}
			if e.LeftFace == oldLeftFace || e.LeftFace == oldRightFace {
				e.LeftFace = newface
			}
			if e.RightFace == oldLeftFace || e.RightFace == oldRightFace {
				e.RightFace = newface
			}
		}
		for _, n := range t.nodes {
			if n.isolated && (n.face == oldLeftFace || n.face == oldRightFace) {
				n.face = newface
			}
		}
	}

	// Step 6.
	startNode, err := t.nodeByID(edge.Start)
	if err != nil {
		return 0, err
	}
	endNode, err := t.nodeByID(edge.End)
	if err != nil {
		return 0, err
	}
	t.deleteEdge(edge)

	// Step 7: restore isolation on endpoints left with no other edges.
	if fnodeEdges == 0 {
		startNode.isolated = true
		startNode.face = newface
	}
	if lnodeEdges == 0 && edge.End != edge.Start {
		endNode.isolated = true
		endNode.face = newface
	}

	// Step 8: delete the old faces that didn't survive as newface.
	if !bridge {
		for _, old := range []FaceID{oldLeftFace, oldRightFace} {
			if old == newface {
				continue
			}
			if f, ferr := t.faceByID(old); ferr == nil {
				t.deleteFace(f)
				if err := t.trigger(EventRemoveFace, Payload{Face: old}); err != nil {
					return 0, err
				}
			}
		}
	}

	// Step 9: update the surviving face's spatial index entry.
	if f, ferr := t.faceByID(newface); ferr == nil && newface != t.universe {
		mbr := f.MBR
		for _, e := range t.edges {
			if e.LeftFace == newface || e.RightFace == newface {
				b := e.Bounds()
				if !f.set {
					mbr = b
				} else {
					mbr = unionBox(mbr, b)
				}
				f.set = true
			}
		}
		t.updateFaceTree(f, mbr)
	}

	if err := t.trigger(EventRemoveEdge, Payload{Edge: id}); err != nil {
		return 0, err
	}
	if !bridge && !modFace && newface != t.universe {
		if err := t.trigger(EventAddFace, Payload{Face: newface}); err != nil {
			return 0, err
		}
	}
	return newface, nil
}
