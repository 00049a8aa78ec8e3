package topo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/topo"
)

// spec.md §7 pins the exact text of structured error messages.
func TestCrossingError_MessageText(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	n3, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	n4, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)

	_, err = top.AddIsoEdge(n3, n4, []geomcore.XY{xy(10, 0), xy(0, 0)})
	require.Error(t, err)
	var ce *topo.CrossingError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, topo.CrossingCoincident, ce.Kind)
	require.Equal(t, eid, ce.OtherEdge)
	require.Equal(t, fmt.Sprintf("topo: coincident edge %d", eid), err.Error())
}

func TestFaceMismatchError_MessageText(t *testing.T) {
	err := &topo.FaceMismatchError{CouldNotDerive: true, Detail: "new edge"}
	require.Equal(t, "topo: Could not derive edge face for new edge", err.Error())

	err2 := &topo.FaceMismatchError{Detail: "left/right faces differ before face-split"}
	require.Equal(t, "topo: Left/right faces mismatch: left/right faces differ before face-split", err2.Error())
}

func TestSideLocationError_MessageText(t *testing.T) {
	err := &topo.SideLocationError{Detail: "isolated endpoints sit in different faces"}
	require.Equal(t, "topo: Side-location conflict: isolated endpoints sit in different faces", err.Error())
}

func TestCorruptionError_MessageText(t *testing.T) {
	err := &topo.CorruptionError{Detail: "left/right faces differ before face-split"}
	require.Equal(t, "topo: Corrupted topo: left/right faces differ before face-split", err.Error())
}

// P5 (spec.md §8): adding an isolated edge and then removing it restores
// the topology to its prior state (both endpoints isolated again, edge
// gone, no stray faces left behind).
func TestAddThenRemove_RoundTripsToIsolated(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)

	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	facesBefore := len(top.FaceIDs())

	_, err = top.RemEdgeNewFace(eid)
	require.NoError(t, err)

	_, err = top.Edge(eid)
	require.ErrorIs(t, err, topo.ErrEdgeNotFound)

	node1, err := top.Node(n1)
	require.NoError(t, err)
	require.True(t, node1.Isolated())
	node2, err := top.Node(n2)
	require.NoError(t, err)
	require.True(t, node2.Isolated())

	require.Equal(t, facesBefore, len(top.FaceIDs()))
	require.Equal(t, 0, top.EdgeIndexLen())
}
