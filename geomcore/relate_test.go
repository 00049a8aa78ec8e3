package geomcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geomcore"
)

const (
	patternCoincident = "1FFF*FFF2"
	patternIntersects = "1********"
	patternCrosses    = "T********"
)

func TestRelate_CoincidentCurveMatchesCoincidentPattern(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(10, 0)}
	b := []geomcore.XY{xy(10, 0), xy(0, 0)}

	im := geomcore.Relate(a, b)
	require.True(t, im.Matches(patternCoincident))
}

func TestRelate_OverlappingCollinearSegmentsMatchesIntersectsPattern(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(10, 0)}
	b := []geomcore.XY{xy(5, 0), xy(15, 0)}

	im := geomcore.Relate(a, b)
	require.False(t, im.Matches(patternCoincident))
	require.True(t, im.Matches(patternIntersects))
	require.True(t, im.Matches(patternCrosses))
}

func TestRelate_ProperInteriorCrossingMatchesCrossesPattern(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(10, 10)}
	b := []geomcore.XY{xy(0, 10), xy(10, 0)}

	im := geomcore.Relate(a, b)
	require.False(t, im.Matches(patternIntersects))
	require.True(t, im.Matches(patternCrosses))
}

func TestRelate_SharedEndpointOnlyMatchesNoForbiddenPattern(t *testing.T) {
	a := []geomcore.XY{xy(0, 0), xy(10, 0)}
	b := []geomcore.XY{xy(10, 0), xy(20, 0)}

	im := geomcore.Relate(a, b)
	require.False(t, im.Matches(patternCoincident))
	require.False(t, im.Matches(patternIntersects))
	require.False(t, im.Matches(patternCrosses))
}

func TestIM_Matches_WildcardAndTSemantics(t *testing.T) {
	im := geomcore.IM{
		{'1', 'F', 'F'},
		{'F', '0', 'F'},
		{'F', 'F', '2'},
	}
	require.True(t, im.Matches("1FF*0*FF2"))
	require.True(t, im.Matches("T********"))
	require.False(t, im.Matches("2********"))
}
