package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/topo"
)

// Scenario 5-flavored (spec.md §8): removing a bridge edge (left==right
// face) restores both endpoints to isolation, floods to the unchanged
// face, and emits no addface.
func TestRemEdgeNewFace_Bridge(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	var sawAddFace bool
	top.On(topo.EventAddFace, func(topo.Event, topo.Payload) error {
		sawAddFace = true
		return nil
	})

	face, err := top.RemEdgeNewFace(eid)
	require.NoError(t, err)
	require.Equal(t, top.Universe(), face)
	require.False(t, sawAddFace)

	_, err = top.Edge(eid)
	require.ErrorIs(t, err, topo.ErrEdgeNotFound)

	node1, err := top.Node(n1)
	require.NoError(t, err)
	require.True(t, node1.Isolated())
	f1, ok := node1.Face()
	require.True(t, ok)
	require.Equal(t, top.Universe(), f1)

	node2, err := top.Node(n2)
	require.NoError(t, err)
	require.True(t, node2.Isolated())
}

// Regression test for spec.md §9's nextLefttDir note: after splitting a
// bridge edge and then removing its first half, the surviving edge's ring
// pointers must be rewritten into a clean self-loop (the same shape a
// freshly added isolated edge has), not left referencing the deleted edge.
func TestRemEdgeNewFace_RewiresRingAfterSplit(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	mid, err := top.ModEdgeSplit(eid, xy(5, 0))
	require.NoError(t, err)

	orig, err := top.Edge(eid)
	require.NoError(t, err)
	secondHalf := orig.NextLeft

	_, err = top.RemEdgeNewFace(eid)
	require.NoError(t, err)

	surviving, err := top.Edge(secondHalf)
	require.NoError(t, err)
	require.Equal(t, surviving.ID, surviving.NextLeft)
	require.False(t, surviving.NextLeftDir)
	require.Equal(t, surviving.ID, surviving.NextRight)
	require.True(t, surviving.NextRightDir)

	midNode, err := top.Node(mid)
	require.NoError(t, err)
	require.False(t, midNode.Isolated())
}

// buildTriangle closes a triangle with AddEdgeNewFaces and returns its three
// edges and the bounded face id split off the universe.
func buildTriangle(t *testing.T, top *topo.Topology) (e1, e2, e3 topo.EdgeID, bounded topo.FaceID) {
	t.Helper()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	n3, err := top.AddIsoNode(xy(5, 8), top.Universe())
	require.NoError(t, err)

	e1, err = top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)
	e2, err = top.AddEdgeNewFaces(n2, n3, []geomcore.XY{xy(10, 0), xy(5, 8)})
	require.NoError(t, err)
	e3, err = top.AddEdgeNewFaces(n3, n1, []geomcore.XY{xy(5, 8), xy(0, 0)})
	require.NoError(t, err)

	edge1, err := top.Edge(e1)
	require.NoError(t, err)
	bounded = edge1.LeftFace
	require.NotEqual(t, top.Universe(), bounded)
	return e1, e2, e3, bounded
}

// Regression test for the bug the reviewer flagged: removing a face-separating
// edge whose two sides are a bounded face and the universe must flood to the
// universe itself, never to a freshly allocated face.
func TestRemEdgeNewFace_MergesBoundedFaceIntoUniverse(t *testing.T) {
	top := topo.New()
	e1, e2, e3, bounded := buildTriangle(t, top)
	facesBefore := len(top.FaceIDs())

	var addedFace topo.FaceID
	var sawAddFace bool
	top.On(topo.EventAddFace, func(_ topo.Event, p topo.Payload) error {
		sawAddFace = true
		addedFace = p.Face
		return nil
	})

	result, err := top.RemEdgeNewFace(e3)
	require.NoError(t, err)
	require.Equal(t, top.Universe(), result)
	require.False(t, sawAddFace, "flooding to the universe must not allocate a new face")
	require.Zero(t, addedFace)

	require.Len(t, top.FaceIDs(), facesBefore-1)
	require.NotContains(t, top.FaceIDs(), bounded)

	edge1, err := top.Edge(e1)
	require.NoError(t, err)
	edge2, err := top.Edge(e2)
	require.NoError(t, err)
	require.Equal(t, top.Universe(), edge1.LeftFace)
	require.Equal(t, top.Universe(), edge1.RightFace)
	require.Equal(t, top.Universe(), edge2.LeftFace)
	require.Equal(t, top.Universe(), edge2.RightFace)
}

// Same scenario under the modify-face policy: the result must still be the
// universe (RemEdgeModFace must not diverge from RemEdgeNewFace when one of
// the two merging faces already is the universe), and no addface fires since
// modFace never allocates a fresh face.
func TestRemEdgeModFace_MergesBoundedFaceIntoUniverse(t *testing.T) {
	top := topo.New()
	e1, _, e3, bounded := buildTriangle(t, top)
	facesBefore := len(top.FaceIDs())

	var sawAddFace bool
	top.On(topo.EventAddFace, func(topo.Event, topo.Payload) error {
		sawAddFace = true
		return nil
	})

	result, err := top.RemEdgeModFace(e3)
	require.NoError(t, err)
	require.Equal(t, top.Universe(), result)
	require.False(t, sawAddFace)

	require.Len(t, top.FaceIDs(), facesBefore-1)
	require.NotContains(t, top.FaceIDs(), bounded)

	edge1, err := top.Edge(e1)
	require.NoError(t, err)
	require.Equal(t, top.Universe(), edge1.LeftFace)
	require.Equal(t, top.Universe(), edge1.RightFace)
}
