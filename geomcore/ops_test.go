package geomcore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
)

func xy(x, y float64) geomcore.XY { return geomcore.XY{X: x, Y: y} }

func TestAzimuth_CardinalDirections(t *testing.T) {
	origin := xy(0, 0)
	require.InDelta(t, 0, geomcore.Azimuth(origin, xy(1, 0)), 1e-9)
	require.InDelta(t, math.Pi/2, geomcore.Azimuth(origin, xy(0, 1)), 1e-9)
	require.InDelta(t, math.Pi, geomcore.Azimuth(origin, xy(-1, 0)), 1e-9)
	require.InDelta(t, 3*math.Pi/2, geomcore.Azimuth(origin, xy(0, -1)), 1e-9)
}

func TestNormalizeAngle_WrapsIntoFullTurn(t *testing.T) {
	require.InDelta(t, 0, geomcore.NormalizeAngle(2*math.Pi), 1e-9)
	require.InDelta(t, math.Pi/2, geomcore.NormalizeAngle(-3*math.Pi/2), 1e-9)
	require.InDelta(t, math.Pi, geomcore.NormalizeAngle(3*math.Pi), 1e-9)
}

func TestEquals_SameAndReversedDirection(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(5, 0), xy(10, 0)}
	sameDir := []geomcore.XY{xy(0, 0), xy(5, 0), xy(10, 0)}
	reversed := []geomcore.XY{xy(10, 0), xy(5, 0), xy(0, 0)}
	different := []geomcore.XY{xy(0, 0), xy(5, 1), xy(10, 0)}

	require.True(t, geomcore.Equals(a, sameDir))
	require.True(t, geomcore.Equals(a, reversed))
	require.False(t, geomcore.Equals(a, different))
}

func TestDistance_ToSegmentAndEndpoint(t *testing.T) {
	coords := []geomcore.XY{xy(0, 0), xy(10, 0)}
	require.InDelta(t, 3, geomcore.Distance(xy(5, 3), coords), 1e-9)
	require.InDelta(t, 0, geomcore.Distance(xy(0, 0), coords), 1e-9)
	require.InDelta(t, 5, geomcore.Distance(xy(-5, 0), coords), 1e-9)
}

func TestIsSimple_OpenAndClosedCurves(t *testing.T) {
	open := []geomcore.XY{xy(0, 0), xy(10, 0), xy(10, 10)}
	require.True(t, geomcore.IsSimple(open))

	square := []geomcore.XY{xy(0, 0), xy(10, 0), xy(10, 10), xy(0, 10), xy(0, 0)}
	require.True(t, geomcore.IsSimple(square))

	bowtie := []geomcore.XY{xy(0, 0), xy(10, 10), xy(10, 0), xy(0, 10)}
	require.False(t, geomcore.IsSimple(bowtie))

	degenerate := []geomcore.XY{xy(0, 0)}
	require.False(t, geomcore.IsSimple(degenerate))
}

func TestIntersects_CrossingAndDisjointSegments(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(10, 10)}
	crossing := []geomcore.XY{xy(0, 10), xy(10, 0)}
	disjoint := []geomcore.XY{xy(0, 20), xy(10, 30)}

	require.True(t, geomcore.Intersects(a, crossing))
	require.False(t, geomcore.Intersects(a, disjoint))
}

func TestSplit_AtMidpointOfSingleSegment(t *testing.T) {
	coords := []geomcore.XY{xy(0, 0), xy(10, 0)}
	before, after, ok := geomcore.Split(coords, xy(5, 0))
	require.True(t, ok)
	require.Equal(t, []geomcore.XY{xy(0, 0), xy(5, 0)}, before)
	require.Equal(t, []geomcore.XY{xy(5, 0), xy(10, 0)}, after)
}

func TestSplit_RejectsPointOffCurve(t *testing.T) {
	coords := []geomcore.XY{xy(0, 0), xy(10, 0)}
	_, _, ok := geomcore.Split(coords, xy(5, 5))
	require.False(t, ok)
}
