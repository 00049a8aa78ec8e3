package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// GetEdgeByPoint implements spec.md §4.2's getEdgeByPoint: an R-tree
// lookup around c widened by tol, filtered by the true distance from c to
// each candidate edge's geometry. Returns every match — disambiguating
// between them is the caller's responsibility, per spec.md.
func (t *Topology) GetEdgeByPoint(c geomcore.XY, tol float64) ([]EdgeID, error) {
	if tol <= 0 {
		tol = t.defaultTolerance
	}
	box := geomcore.Box{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}.Expand(tol)
	var out []EdgeID
	for _, hit := range t.edgeIndex.Query(box) {
		e := hit.(*Edge)
		if geomcore.Distance(c, e.Coords) <= tol {
			out = append(out, e.ID)
		}
	}
	return out, nil
}

// GetEdgesByLine implements spec.md §4.2's getEdgesByLine: an R-tree lookup
// over the bounding box of coords, filtered by true intersection.
func (t *Topology) GetEdgesByLine(coords []geomcore.XY) ([]EdgeID, error) {
	box := geomcore.BoundsOf(coords)
	var out []EdgeID
	for _, hit := range t.edgeIndex.Query(box) {
		e := hit.(*Edge)
		if geomcore.Intersects(coords, e.Coords) {
			out = append(out, e.ID)
		}
	}
	return out, nil
}

// GetEdgeByNode implements spec.md §4.2's getEdgeByNode: a linear scan
// returning every edge whose Start or End matches any of the given nodes.
func (t *Topology) GetEdgeByNode(nodes ...NodeID) []EdgeID {
	want := make(map[NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		want[n] = struct{}{}
	}
	var out []EdgeID
	for _, e := range t.edges {
		if _, ok := want[e.Start]; ok {
			out = append(out, e.ID)
			continue
		}
		if _, ok := want[e.End]; ok {
			out = append(out, e.ID)
		}
	}
	return out
}
