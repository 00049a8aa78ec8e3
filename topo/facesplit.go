package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// halfEdge names one directed traversal of an edge: dir true means
// start→end, false means end→start — the same convention as
// NextLeftDir/NextRightDir.
type halfEdge struct {
	edge EdgeID
	dir  bool
}

// maxRingSteps bounds ringWalk against a corrupted topology whose next*
// links do not actually cycle back to their start.
const maxRingSteps = 1 << 20

// ringWalk traces the ring reachable from (startEdge, startDir) by
// alternating next-pointers on the current directional state: from a
// half-edge traveling start→end (dir true) the ring continues via that
// edge's NextLeft/NextLeftDir; from one traveling end→start (dir false) it
// continues via NextRight/NextRightDir. This is the single rule I3 names
// for both "the nextLeft ring" and "the nextRight ring" — which one a walk
// traces falls out of the starting direction alone.
func (t *Topology) ringWalk(startEdge EdgeID, startDir bool) ([]halfEdge, []geomcore.XY, error) {
	var ring []halfEdge
	var path []geomcore.XY

	e, dir := startEdge, startDir
	for steps := 0; ; steps++ {
		if steps > 0 && e == startEdge && dir == startDir {
			break
		}
		if steps > maxRingSteps {
			return nil, nil, &CorruptionError{Detail: "ring walk did not close"}
		}
		edge, err := t.edgeByID(e)
		if err != nil {
			return nil, nil, &CorruptionError{Detail: "ring references missing edge"}
		}
		ring = append(ring, halfEdge{edge: e, dir: dir})

		seg := edge.Coords
		if !dir {
			seg = reversedXY(seg)
		}
		if len(path) == 0 {
			path = append(path, seg...)
		} else {
			path = append(path, seg[1:]...)
		}

		if dir {
			e, dir = edge.NextLeft, edge.NextLeftDir
		} else {
			e, dir = edge.NextRight, edge.NextRightDir
		}
	}
	return ring, path, nil
}

func reversedXY(in []geomcore.XY) []geomcore.XY {
	out := make([]geomcore.XY, len(in))
	for i, p := range in {
		out[len(in)-1-i] = p
	}
	return out
}

// signedArea computes the signed shoelace area of a (possibly open) path,
// treating it as implicitly closed. A degenerate ring that walks an edge
// forward then immediately back (the addIsoEdge self-loop) always yields 0.
func signedArea(path []geomcore.XY) float64 {
	if len(path) < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < len(path); i++ {
		j := (i + 1) % len(path)
		sum += path[i].X*path[j].Y - path[j].X*path[i].Y
	}
	return sum / 2
}

// addFaceSplit implements the face collaborator spec.md §1 and §4.6/§4.7
// name: walk the ring starting at (startEdge, startDir), and if its signed
// area shows it encloses a genuinely new bounded region (rather than being
// a degenerate back-and-forth, or the outer boundary walked the direction
// that faces the universe), materialize that as a face — a fresh one, or
// (under mergeMode) oldFace reused in place — and rewrite every half-edge
// on the ring to reference it.
//
// Returns faceIdOrZeroOrNegative (spec.md §6): a positive id when a face was
// split off; 0 when the ring is degenerate (near-zero area — an open curve
// or a back-and-forth walk, neither of which bounds anything); a negative
// sentinel when the ring is well-formed but wound the direction that faces
// outward (the complementary ring of a real split, or the outer boundary's
// own reverse walk) rather than enclosing new territory. The distinction
// between 0 and negative matters to the caller: addEdge's new-face policy
// (spec.md §4.6 step 8) only stops on an exact 0, and continues past a
// negative result to check the other ring.
func (t *Topology) addFaceSplit(startEdge EdgeID, startDir bool, oldFace FaceID, mergeMode bool) (FaceID, error) {
	ring, path, err := t.ringWalk(startEdge, startDir)
	if err != nil {
		return 0, err
	}

	area := signedArea(path)
	const areaEpsilon = 1e-9
	if area < -areaEpsilon {
		return -1, nil
	}
	if area <= areaEpsilon {
		return 0, nil
	}

	var face FaceID
	if mergeMode {
		face = oldFace
	} else {
		face = t.nextFaceID()
	}
	f := &Face{ID: face}
	mbr := geomcore.BoundsOf(path)

	if mergeMode {
		existing, err := t.faceByID(oldFace)
		if err != nil {
			return 0, err
		}
		t.updateFaceTree(existing, mbr)
	} else {
		t.insertFace(f)
		t.updateFaceTree(f, mbr)
	}

	for _, he := range ring {
		edge, err := t.edgeByID(he.edge)
		if err != nil {
			return 0, err
		}
		if he.dir {
			edge.LeftFace = face
		} else {
			edge.RightFace = face
		}
	}

	if !mergeMode {
		if err := t.trigger(EventAddFace, Payload{Face: face}); err != nil {
			return 0, err
		}
	}
	return face, nil
}
