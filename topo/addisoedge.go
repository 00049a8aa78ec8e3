package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// AddIsoEdge implements spec.md §4.5: connect two isolated nodes sharing a
// face with a brand-new edge that touches no other edge's ring.
func (t *Topology) AddIsoEdge(start, end NodeID, coords []geomcore.XY) (EdgeID, error) {
	if start == end {
		return 0, ErrSameStartEnd
	}
	sn, err := t.nodeByID(start)
	if err != nil {
		return 0, err
	}
	en, err := t.nodeByID(end)
	if err != nil {
		return 0, err
	}
	if !sn.isolated || !en.isolated {
		return 0, ErrNotIsolated
	}
	if sn.face != en.face {
		return 0, ErrDifferentFaces
	}
	if len(coords) < 2 {
		return 0, ErrCurveNotSimple
	}
	if !coords[0].Equal(sn.Coordinate) {
		return 0, &GeometryMismatchError{AtStart: true}
	}
	if !coords[len(coords)-1].Equal(en.Coordinate) {
		return 0, &GeometryMismatchError{AtStart: false}
	}
	if !geomcore.IsSimple(coords) {
		return 0, ErrCurveNotSimple
	}
	if err := t.validateNoCrossing(coords, NoEdge); err != nil {
		return 0, err
	}

	e := &Edge{
		ID:           t.nextEdgeID(),
		Coords:       coords,
		Start:        start,
		End:          end,
		LeftFace:     sn.face,
		RightFace:    sn.face,
		NextLeftDir:  false,
		NextRightDir: true,
	}
	e.NextLeft = e.ID
	e.NextRight = e.ID
	e.recomputeBounds()

	t.insertEdge(e)
	sn.isolated = false
	en.isolated = false

	if err := t.trigger(EventAddEdge, Payload{Edge: e.ID}); err != nil {
		return 0, err
	}
	return e.ID, nil
}
