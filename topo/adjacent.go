package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// edgeEnd carries the inputs and outputs of the adjacent-edge finder
// (spec.md §4.4) for one end of a candidate edge: az is the new half-edge's
// outgoing azimuth at this node; the remaining fields are filled in by
// findAdjacent.
type edgeEnd struct {
	az float64

	nextCW    EdgeID
	nextCWDir bool
	nextCCW   EdgeID
	nextCCWDir bool

	cwFace  FaceID
	ccwFace FaceID
}

// findAdjacent implements spec.md §4.4: sweeping every edge incident to node
// (other than exclude), it finds the nearest neighbor clockwise and
// counter-clockwise from data.az and the faces each bounds. other, when
// non-nil, seeds the initial sweep window with the azimuthal gap to the new
// edge's own opposite end — used for a closed candidate edge (start==end),
// where that opposite end is also, in effect, incident to this node even
// though it is not in the edge collection yet.
//
// Unlike spec.md's literal description, findAdjacent does not itself derive
// face values from an isolated node's own Face attribute or from `other`'s
// (not-yet-computed) faces — callers (addedge.go) seed edge.LeftFace/
// RightFace from the node's isolated face before wiring, and only consult
// cwFace/ccwFace here when real neighbors were found. This keeps the finder
// a pure "nearest neighbor by azimuth" primitive. See DESIGN.md.
func (t *Topology) findAdjacent(node NodeID, data *edgeEnd, other *edgeEnd, exclude EdgeID, inserting bool) error {
	data.nextCW, data.nextCCW = NoEdge, NoEdge
	data.cwFace, data.ccwFace = UnknownFace, UnknownFace

	minaz, maxaz := -1.0, -1.0
	haveSeed := false
	if other != nil {
		d := geomcore.NormalizeAngle(data.az - other.az)
		minaz, maxaz = d, d
		haveSeed = true
	}

	found := false
	for _, e := range t.GetEdgeByNode(node) {
		if e == exclude {
			continue
		}
		edge := t.edges[e]
		var az float64
		var cwCandidate, ccwCandidate FaceID
		var dir bool
		if edge.Start == node {
			az = geomcore.Azimuth(edge.Coords[0], edge.Coords[1])
			cwCandidate, ccwCandidate = edge.LeftFace, edge.RightFace
			dir = true
		}
		// A self-loop edge (Start==End==node) is incident from both ends;
		// consider the end-side outgoing direction too.
		if edge.End == node {
			azEnd := geomcore.Azimuth(edge.Coords[len(edge.Coords)-1], edge.Coords[len(edge.Coords)-2])
			if edge.Start != node {
				az = azEnd
				cwCandidate, ccwCandidate = edge.RightFace, edge.LeftFace
				dir = false
			} else {
				// Handle the end-side occurrence of a self-loop as a second
				// independent candidate in the same sweep.
				t.considerNeighbor(data, &minaz, &maxaz, &found, edge.ID, false, azEnd, edge.RightFace, edge.LeftFace)
			}
		}
		t.considerNeighbor(data, &minaz, &maxaz, &found, edge.ID, dir, az, cwCandidate, ccwCandidate)
	}

	if !found && haveSeed {
		// No real neighbors: the only "edge" in the sweep window is the new
		// candidate's own other end: there is nothing to link to yet.
		return nil
	}

	if !inserting && found && data.cwFace != UnknownFace && data.ccwFace != UnknownFace && data.cwFace != data.ccwFace {
		return &CorruptionError{Detail: "adjacent edges bind different faces"}
	}
	return nil
}

// considerNeighbor updates data/minaz/maxaz for a single candidate half-edge
// at azimuth az, following spec.md §4.4 step 2's tie-breaking rule (strict
// less-than / greater-than so the first-seen edge wins ties).
func (t *Topology) considerNeighbor(data *edgeEnd, minaz, maxaz *float64, found *bool, id EdgeID, dir bool, az float64, cwCandidate, ccwCandidate FaceID) {
	d := geomcore.NormalizeAngle(data.az - az)
	*found = true
	if *minaz < 0 || d < *minaz {
		*minaz = d
		data.nextCW = id
		data.nextCWDir = dir
		data.cwFace = cwCandidate
	}
	if *maxaz < 0 || d > *maxaz {
		*maxaz = d
		data.nextCCW = id
		data.nextCCWDir = dir
		data.ccwFace = ccwCandidate
	}
}
