package topo

// Node, Edge and FaceRec expose live records by id for callers (tests,
// diagnostics) that need to inspect state the CORE mutations don't
// otherwise return. They are read-only by convention: callers must not
// mutate the returned pointers.
func (t *Topology) Node(id NodeID) (*Node, error) { return t.nodeByID(id) }
func (t *Topology) Edge(id EdgeID) (*Edge, error) { return t.edgeByID(id) }
func (t *Topology) FaceRec(id FaceID) (*Face, error) { return t.faceByID(id) }

// EdgeIDs returns every live edge id, in no particular order.
func (t *Topology) EdgeIDs() []EdgeID {
	out := make([]EdgeID, 0, len(t.edges))
	for id := range t.edges {
		out = append(out, id)
	}
	return out
}

// NodeIDs returns every live node id, in no particular order.
func (t *Topology) NodeIDs() []NodeID {
	out := make([]NodeID, 0, len(t.nodes))
	for id := range t.nodes {
		out = append(out, id)
	}
	return out
}

// FaceIDs returns every live face id, in no particular order.
func (t *Topology) FaceIDs() []FaceID {
	out := make([]FaceID, 0, len(t.faces))
	for id := range t.faces {
		out = append(out, id)
	}
	return out
}

// EdgeIndexLen and FaceIndexLen report the live size of each R-tree, for P4/
// I7 property tests that check the index against a linear scan.
func (t *Topology) EdgeIndexLen() int { return t.edgeIndex.Len() }
func (t *Topology) FaceIndexLen() int { return t.faceIndex.Len() }
