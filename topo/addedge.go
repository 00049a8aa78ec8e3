package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// ringLink names the existing half-edge whose ring pointer must be
// rewritten, after the new edge's id is known, to reference the new edge
// (spec.md §4.6 step 6: "update the one or two previous half-edges").
type ringLink struct {
	edge EdgeID
	dir  bool
}

// AddEdgeNewFaces implements addEdge (spec.md §4.6) under the new-face-only
// policy: when a closing edge splits a face, the original face is deleted
// (unless it is the universe, which is never deleted) and replaced by up to
// two freshly allocated faces.
func (t *Topology) AddEdgeNewFaces(start, end NodeID, coords []geomcore.XY) (EdgeID, error) {
	return t.addEdge(start, end, coords, false)
}

// AddEdgeModFace implements addEdge under the modify-original policy: the
// original face is reused (kept alive, MBR updated) for one side of a
// closing edge, and only the other side (if it also encloses new area)
// gets a freshly allocated face.
func (t *Topology) AddEdgeModFace(start, end NodeID, coords []geomcore.XY) (EdgeID, error) {
	return t.addEdge(start, end, coords, true)
}

func (t *Topology) addEdge(start, end NodeID, coords []geomcore.XY, modFace bool) (EdgeID, error) {
	if len(coords) < 2 {
		return 0, ErrCurveNotSimple
	}
	if !geomcore.IsSimple(coords) {
		return 0, ErrCurveNotSimple
	}
	sn, err := t.nodeByID(start)
	if err != nil {
		return 0, err
	}
	en, err := t.nodeByID(end)
	if err != nil {
		return 0, err
	}
	if !coords[0].Equal(sn.Coordinate) {
		return 0, &GeometryMismatchError{AtStart: true}
	}
	if !coords[len(coords)-1].Equal(en.Coordinate) {
		return 0, &GeometryMismatchError{AtStart: false}
	}
	if err := t.validateNoCrossing(coords, NoEdge); err != nil {
		return 0, err
	}
	if sn.isolated && en.isolated && sn.face != en.face {
		return 0, &SideLocationError{Detail: "isolated endpoints sit in different faces"}
	}

	isClosed := start == end
	span := &edgeEnd{az: geomcore.Azimuth(coords[0], coords[1])}
	epan := &edgeEnd{az: geomcore.Azimuth(coords[len(coords)-1], coords[len(coords)-2])}

	var otherForStart, otherForEnd *edgeEnd
	if isClosed {
		otherForStart, otherForEnd = epan, span
	}
	if err := t.findAdjacent(start, span, otherForStart, NoEdge, true); err != nil {
		return 0, err
	}
	if err := t.findAdjacent(end, epan, otherForEnd, NoEdge, true); err != nil {
		return 0, err
	}

	edge := &Edge{
		ID:        t.nextEdgeID(),
		Coords:    coords,
		Start:     start,
		End:       end,
		LeftFace:  UnknownFace,
		RightFace: UnknownFace,
	}

	var prevLeft, prevRight ringLink

	// Ring wiring at start (spec.md §4.6 step 3).
	if !sn.isolated {
		cw, cwDir := span.nextCW, span.nextCWDir
		ccw, ccwDir := span.nextCCW, span.nextCCWDir
		if cw == NoEdge {
			cw, cwDir = edge.ID, false
		}
		if ccw == NoEdge {
			ccw, ccwDir = edge.ID, false
		}
		edge.NextRight, edge.NextRightDir = cw, cwDir
		prevLeft = ringLink{edge: ccw, dir: !ccwDir}
		edge.RightFace = orElse(edge.RightFace, span.cwFace)
		edge.LeftFace = orElse(edge.LeftFace, span.ccwFace)
	} else {
		edge.NextRight, edge.NextRightDir = edge.ID, !isClosed
		// The new edge is its own only neighbor at this end: there is no
		// previous half-edge to rewire, and applyRingLink's NoEdge lookup
		// failure keeps this a no-op rather than letting the write clobber
		// whatever the other end's wiring set on the same field.
		prevLeft = ringLink{edge: NoEdge}
		edge.RightFace = orElse(edge.RightFace, sn.face)
		edge.LeftFace = orElse(edge.LeftFace, sn.face)
	}

	// Ring wiring at end (step 4, mirrors step 3).
	if !en.isolated {
		cw, cwDir := epan.nextCW, epan.nextCWDir
		ccw, ccwDir := epan.nextCCW, epan.nextCCWDir
		if cw == NoEdge {
			cw, cwDir = edge.ID, false
		}
		if ccw == NoEdge {
			ccw, ccwDir = edge.ID, false
		}
		edge.NextLeft, edge.NextLeftDir = cw, cwDir
		prevRight = ringLink{edge: ccw, dir: !ccwDir}
		if edge.RightFace == UnknownFace {
			edge.RightFace = epan.ccwFace
		} else if epan.ccwFace != UnknownFace && edge.RightFace != epan.ccwFace {
			return 0, &SideLocationError{Detail: "right face disagrees between endpoints"}
		}
		if edge.LeftFace == UnknownFace {
			edge.LeftFace = epan.cwFace
		} else if epan.cwFace != UnknownFace && edge.LeftFace != epan.cwFace {
			return 0, &SideLocationError{Detail: "left face disagrees between endpoints"}
		}
	} else {
		edge.NextLeft, edge.NextLeftDir = edge.ID, isClosed
		prevRight = ringLink{edge: NoEdge}
		if edge.RightFace == UnknownFace {
			edge.RightFace = en.face
		}
		if edge.LeftFace == UnknownFace {
			edge.LeftFace = en.face
		}
	}

	// Final face check (step 5).
	if edge.LeftFace == UnknownFace || edge.RightFace == UnknownFace {
		return 0, &FaceMismatchError{CouldNotDerive: true, Detail: "new edge"}
	}
	if edge.LeftFace != edge.RightFace {
		return 0, &CorruptionError{Detail: "left/right faces differ before face-split"}
	}
	originalFace := edge.LeftFace
	startWasIsolated, endWasIsolated := sn.isolated, en.isolated

	edge.recomputeBounds()
	t.insertEdge(edge)

	// Step 6: rewire the one or two neighbors found above.
	applyRingLink(t, prevLeft, edge.ID, true)
	applyRingLink(t, prevRight, edge.ID, false)

	// Step 7.
	sn.isolated = false
	en.isolated = false

	// Step 8: face-split decision. A closing edge is one that meets itself
	// at one node (isClosed) or connects two already-connected nodes —
	// either way both its ends already had a place in some ring before
	// this insertion, so it may bound new territory.
	closesRing := isClosed || (!startWasIsolated && !endWasIsolated)
	if !closesRing {
		if err := t.trigger(EventAddEdge, Payload{Edge: edge.ID}); err != nil {
			return 0, err
		}
		return edge.ID, nil
	}

	if !modFace {
		// spec.md §4.6 step 8: only an exact 0 (a genuinely degenerate ring)
		// short-circuits here. A negative result means this side faces
		// outward rather than enclosing anything new, but the edge still
		// closed a real ring overall — the other side still needs checking
		// and the original face still needs replacing.
		right, err := t.addFaceSplit(edge.ID, false, originalFace, false)
		if err != nil {
			return 0, err
		}
		if right == 0 {
			if err := t.trigger(EventAddEdge, Payload{Edge: edge.ID}); err != nil {
				return 0, err
			}
			return edge.ID, nil
		}
		if _, err := t.addFaceSplit(edge.ID, true, originalFace, false); err != nil {
			return 0, err
		}
		if originalFace != t.universe {
			if f, ferr := t.faceByID(originalFace); ferr == nil {
				t.deleteFace(f)
				if err := t.trigger(EventRemoveFace, Payload{Face: originalFace}); err != nil {
					return 0, err
				}
			}
		}
	} else {
		// spec.md §4.6 step 8: under modFace, 0 OR negative both
		// short-circuit — unlike the new-face policy above, there is no
		// "other side still needs checking" case, since modFace only ever
		// allocates a face for the right-side ring, and that only matters
		// once the left-side ring has already confirmed a real split.
		left, err := t.addFaceSplit(edge.ID, true, originalFace, true)
		if err != nil {
			return 0, err
		}
		if left <= 0 {
			if err := t.trigger(EventAddEdge, Payload{Edge: edge.ID}); err != nil {
				return 0, err
			}
			return edge.ID, nil
		}
		if _, err := t.addFaceSplit(edge.ID, false, originalFace, false); err != nil {
			return 0, err
		}
	}

	if err := t.trigger(EventAddEdge, Payload{Edge: edge.ID}); err != nil {
		return 0, err
	}
	return edge.ID, nil
}

// orElse returns cur if it is already resolved (not UnknownFace), else cand.
func orElse(cur, cand FaceID) FaceID {
	if cur != UnknownFace {
		return cur
	}
	return cand
}

// applyRingLink rewrites link.edge's appropriate next-pointer to reference
// newEdge, using link.dir to pick NextLeft vs NextRight (the same
// dir-selects-field rule ringWalk uses) and arriveDir as the direction
// recorded for the new edge (true departing from its start, false from its
// end).
func applyRingLink(t *Topology, link ringLink, newEdge EdgeID, arriveDir bool) {
	target, err := t.edgeByID(link.edge)
	if err != nil {
		return
	}
	if link.dir {
		target.NextLeft, target.NextLeftDir = newEdge, arriveDir
	} else {
		target.NextRight, target.NextRightDir = newEdge, arriveDir
	}
}
