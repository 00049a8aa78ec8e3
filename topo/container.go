package topo

import (
	"sync/atomic"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/rtreeidx"
	"github.com/katalvlaran/lvtopo/tracing"
)

// Topology is the container spec.md §1 calls "the `topo` collaborator": the
// edge/node/face collections, sequence counters, the universe face, the two
// R-trees and the event dispatcher that the CORE edge subsystem operates on.
//
// Topology is not safe for concurrent use (spec.md §5 and SPEC_FULL.md §5):
// every mutation runs to completion before the next one starts, and the
// type carries no locks.
type Topology struct {
	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge
	faces map[FaceID]*Face

	nodeSeq int64
	edgeSeq int64
	faceSeq int64

	edgeIndex *rtreeidx.Index
	faceIndex *rtreeidx.Index

	universe FaceID
	dispatcher *eventDispatcher
	tracer     tracing.Tracer

	defaultTolerance float64
}

// New creates an empty Topology containing only the universe face.
func New(opts ...Option) *Topology {
	t := &Topology{
		nodes:            make(map[NodeID]*Node),
		edges:            make(map[EdgeID]*Edge),
		faces:            make(map[FaceID]*Face),
		edgeIndex:        rtreeidx.New(),
		faceIndex:        rtreeidx.New(),
		dispatcher:       newEventDispatcher(),
		tracer:           tracing.Noop(),
		defaultTolerance: 1e-8,
	}
	t.faceSeq = int64(UniverseFace)
	universe := &Face{ID: UniverseFace}
	t.faces[UniverseFace] = universe
	t.universe = UniverseFace
	for _, o := range opts {
		o(t)
	}
	return t
}

// Universe returns the id of the distinguished, never-deleted outer face.
func (t *Topology) Universe() FaceID { return t.universe }

func (t *Topology) nextNodeID() NodeID {
	return NodeID(atomic.AddInt64(&t.nodeSeq, 1))
}

func (t *Topology) nextEdgeID() EdgeID {
	return EdgeID(atomic.AddInt64(&t.edgeSeq, 1))
}

func (t *Topology) nextFaceID() FaceID {
	return FaceID(atomic.AddInt64(&t.faceSeq, 1))
}

// insertNode registers n in the node collection. It does not touch any
// spatial index: isolated nodes are not indexed (only edges and faces are,
// per spec.md §1's "spatial index" scope).
func (t *Topology) insertNode(n *Node) {
	t.nodes[n.ID] = n
}

// insertEdge registers e in the edge collection and the edges R-tree.
func (t *Topology) insertEdge(e *Edge) {
	t.edges[e.ID] = e
	t.edgeIndex.Insert(e)
}

// deleteEdge removes e from the edge collection and the edges R-tree.
func (t *Topology) deleteEdge(e *Edge) {
	t.edgeIndex.Remove(e)
	delete(t.edges, e.ID)
}

// insertFace registers f in the face collection and (for bounded faces with
// a known MBR) the faces R-tree.
func (t *Topology) insertFace(f *Face) {
	t.faces[f.ID] = f
	if f.ID != t.universe && f.set {
		t.faceIndex.Insert(f)
	}
}

// updateFaceTree re-derives f's indexed bounds after its MBR has changed.
func (t *Topology) updateFaceTree(f *Face, mbr geomcore.Box) {
	indexed := f.ID != t.universe && f.set
	if indexed {
		t.faceIndex.Remove(f)
	}
	f.MBR = mbr
	f.set = true
	if f.ID != t.universe {
		t.faceIndex.Insert(f)
	}
}

// deleteFace removes f from the face collection and (if indexed) the faces
// R-tree. The universe face is never deleted; callers never ask.
func (t *Topology) deleteFace(f *Face) {
	if f.ID != t.universe && f.set {
		t.faceIndex.Remove(f)
	}
	delete(t.faces, f.ID)
}

// trigger emits ev with payload p through the dispatcher.
func (t *Topology) trigger(ev Event, p Payload) error {
	t.tracer.Tracef("event %s node=%d edge=%d face=%d", ev, p.Node, p.Edge, p.Face)
	return t.dispatcher.trigger(ev, p)
}

// edgeByID returns e or ErrEdgeNotFound.
func (t *Topology) edgeByID(id EdgeID) (*Edge, error) {
	e, ok := t.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// nodeByID returns n or ErrNodeNotFound.
func (t *Topology) nodeByID(id NodeID) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// faceByID returns f or ErrFaceNotFound.
func (t *Topology) faceByID(id FaceID) (*Face, error) {
	f, ok := t.faces[id]
	if !ok {
		return nil, ErrFaceNotFound
	}
	return f, nil
}
