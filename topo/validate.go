package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// validateNoCrossing implements the crossing validator (spec.md §4.3):
// query the edges R-tree with the candidate's bounds, and for every
// existing edge whose geometry relates to the candidate via one of the
// three forbidden DE-9IM patterns, reject with the corresponding error.
// excludeSelf, when non-zero, skips that edge id — used when re-validating
// an edge against the rest of the topology (e.g. not used by the CORE
// today, but kept for callers that revalidate in place).
func (t *Topology) validateNoCrossing(coords []geomcore.XY, excludeSelf EdgeID) error {
	box := geomcore.BoundsOf(coords)
	for _, hit := range t.edgeIndex.Query(box) {
		e := hit.(*Edge)
		if e.ID == excludeSelf {
			continue
		}
		im := geomcore.Relate(e.Coords, coords)
		switch {
		case im.Matches("1FFF*FFF2"):
			return &CrossingError{Kind: CrossingCoincident, OtherEdge: e.ID}
		case im.Matches("1********"):
			return &CrossingError{Kind: CrossingIntersects, OtherEdge: e.ID}
		case im.Matches("T********"):
			return &CrossingError{Kind: CrossingCrosses, OtherEdge: e.ID}
		}
	}
	return nil
}
