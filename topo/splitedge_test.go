package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/topo"
)

// Scenario 4 (spec.md §8): splitting an edge produces a new node at the
// split point and rewires the original edge's left ring onto the new edge.
func TestModEdgeSplit_SplitsAtCoordinate(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	newNode, err := top.ModEdgeSplit(eid, xy(5, 0))
	require.NoError(t, err)

	node, err := top.Node(newNode)
	require.NoError(t, err)
	require.Equal(t, xy(5, 0), node.Coordinate)
	require.False(t, node.Isolated())

	orig, err := top.Edge(eid)
	require.NoError(t, err)
	require.Equal(t, []geomcore.XY{xy(0, 0), xy(5, 0)}, orig.Coords)
	require.Equal(t, newNode, orig.End)
	require.True(t, orig.NextLeftDir)

	newEdgeID := orig.NextLeft
	require.NotEqual(t, eid, newEdgeID)
	newEdge, err := top.Edge(newEdgeID)
	require.NoError(t, err)
	require.Equal(t, []geomcore.XY{xy(5, 0), xy(10, 0)}, newEdge.Coords)
	require.Equal(t, newNode, newEdge.Start)
	require.Equal(t, n2, newEdge.End)
	require.Equal(t, eid, newEdge.NextRight)
	require.False(t, newEdge.NextRightDir)
}
