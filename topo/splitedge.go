package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// ModEdgeSplit implements modEdgeSplit (spec.md §4.8): insert a node inside
// an existing edge's geometry and produce a second edge for the far half,
// rewiring ring pointers so every invariant the original edge upheld still
// holds over the two resulting edges.
func (t *Topology) ModEdgeSplit(id EdgeID, at geomcore.XY) (NodeID, error) {
	edge, err := t.edgeByID(id)
	if err != nil {
		return 0, err
	}

	before, after, ok := geomcore.Split(edge.Coords, at)
	if !ok {
		return 0, ErrCurveNotSimple
	}
	splitPoint := before[len(before)-1]

	node := &Node{
		ID:         t.nextNodeID(),
		Coordinate: splitPoint,
		isolated:   false,
	}
	t.insertNode(node)
	if err := t.trigger(EventAddNode, Payload{Node: node.ID}); err != nil {
		return 0, err
	}

	originalEnd := edge.End
	newedge1 := &Edge{
		ID:        t.nextEdgeID(),
		Coords:    after,
		Start:     node.ID,
		End:       originalEnd,
		LeftFace:  edge.LeftFace,
		RightFace: edge.RightFace,
	}
	newedge1.NextRight, newedge1.NextRightDir = edge.ID, false

	selfLoopLeft := edge.NextLeft == edge.ID && !edge.NextLeftDir
	if selfLoopLeft {
		newedge1.NextLeft, newedge1.NextLeftDir = newedge1.ID, false
	} else {
		newedge1.NextLeft, newedge1.NextLeftDir = edge.NextLeft, edge.NextLeftDir
	}
	newedge1.recomputeBounds()
	t.insertEdge(newedge1)

	// Truncate the original edge.
	t.edgeIndex.Remove(edge)
	edge.Coords = before
	edge.End = node.ID
	edge.NextLeft, edge.NextLeftDir = newedge1.ID, true
	edge.recomputeBounds()
	t.edgeIndex.Insert(edge)

	// Step 8: repoint every other edge whose ring pointer targeted the
	// original edge's far half-edge (arriving at what is now newedge1's
	// territory) to newedge1 instead.
	for _, oid := range t.GetEdgeByNode(originalEnd) {
		if oid == edge.ID || oid == newedge1.ID {
			continue
		}
		other, err := t.edgeByID(oid)
		if err != nil {
			return 0, err
		}
		if other.NextRight == edge.ID && !other.NextRightDir && other.Start == originalEnd {
			other.NextRight, other.NextRightDir = newedge1.ID, false
		}
		if other.NextLeft == edge.ID && !other.NextLeftDir && other.End == originalEnd {
			other.NextLeft, other.NextLeftDir = newedge1.ID, false
		}
	}

	if err := t.trigger(EventAddEdge, Payload{Edge: newedge1.ID}); err != nil {
		return 0, err
	}
	if err := t.trigger(EventModEdge, Payload{Edge: edge.ID}); err != nil {
		return 0, err
	}
	if err := t.trigger(EventSplitEdge, Payload{Edge: edge.ID, Node: node.ID}); err != nil {
		return 0, err
	}
	return node.ID, nil
}
