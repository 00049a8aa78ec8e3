package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// AddIsoNode creates a new isolated node at coordinate c, contained in face.
// This is the node-insertion primitive spec.md §1 lists as an external
// collaborator; it is implemented here (SPEC_FULL.md §6) so the edge
// subsystem has isolated nodes to connect.
func (t *Topology) AddIsoNode(c geomcore.XY, face FaceID) (NodeID, error) {
	if _, err := t.faceByID(face); err != nil {
		return 0, err
	}
	n := &Node{
		ID:         t.nextNodeID(),
		Coordinate: c,
		isolated:   true,
		face:       face,
	}
	t.insertNode(n)
	if err := t.trigger(EventAddNode, Payload{Node: n.ID}); err != nil {
		return 0, err
	}
	return n.ID, nil
}

// RemIsoNode deletes an isolated node. Returns an error if the node does not
// exist or still has incident edges.
func (t *Topology) RemIsoNode(id NodeID) error {
	n, err := t.nodeByID(id)
	if err != nil {
		return err
	}
	if !n.isolated {
		return ErrNotIsolated
	}
	delete(t.nodes, id)
	return nil
}
