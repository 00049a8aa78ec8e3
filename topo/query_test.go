package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/topo"
)

// P6 (spec.md §8): repeated getEdgeByPoint calls with the same arguments
// return the same edge set.
func TestGetEdgeByPoint_Idempotent(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	_, err = top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	first, err := top.GetEdgeByPoint(xy(5, 0), 0.5)
	require.NoError(t, err)
	second, err := top.GetEdgeByPoint(xy(5, 0), 0.5)
	require.NoError(t, err)
	require.ElementsMatch(t, first, second)
	require.Len(t, first, 1)
}

func TestGetEdgeByNode(t *testing.T) {
	top := topo.New()
	n1, err := top.AddIsoNode(xy(0, 0), top.Universe())
	require.NoError(t, err)
	n2, err := top.AddIsoNode(xy(10, 0), top.Universe())
	require.NoError(t, err)
	eid, err := top.AddIsoEdge(n1, n2, []geomcore.XY{xy(0, 0), xy(10, 0)})
	require.NoError(t, err)

	require.Equal(t, []topo.EdgeID{eid}, top.GetEdgeByNode(n1))
	require.Equal(t, []topo.EdgeID{eid}, top.GetEdgeByNode(n2))
}
