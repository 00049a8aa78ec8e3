package geomcore

// IM is a DE-9IM intersection matrix restricted to what the crossing
// validator needs: the dimension of the intersection between each of (this
// curve's interior, boundary, exterior) and (the other curve's interior,
// boundary, exterior). Cells hold 'F' (empty), '0' (point), '1' (line), or
// '2' (area — produced here only in the exterior/exterior cell, since lvtopo
// only relates 1-dimensional curves).
type IM [3][3]byte

const (
	imInterior = 0
	imBoundary = 1
	imExterior = 2
)

// Matches tests the matrix against a 9-character DE-9IM pattern using 'T'
// (any non-F), 'F', '0', '1', '2', and '*' (don't care) wildcards, reading
// the pattern row-major (II IB IE BI BB BE EI EB EE) as in the OGC spec.
func (m IM) Matches(pattern string) bool {
	if len(pattern) != 9 {
		return false
	}
	k := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := pattern[k]
			k++
			got := m[r][c]
			switch want {
			case '*':
				continue
			case 'T':
				if got == 'F' {
					return false
				}
			default:
				if got != want {
					return false
				}
			}
		}
	}
	return true
}

// Relate computes the DE-9IM matrix between two simple polylines a and b.
// It is deliberately scoped to what the crossing validator (spec.md §4.3)
// needs — coincidence, interior/interior overlap, and any interior
// intersection — rather than being a general-purpose DE-9IM engine for
// arbitrary geometries; see DESIGN.md for why a full engine is out of scope.
func Relate(a, b []XY) IM {
	m := IM{
		{'F', 'F', '1'},
		{'F', 'F', '0'},
		{'1', '0', '2'},
	}

	if Equals(a, b) {
		m[imInterior][imInterior] = '1'
		m[imInterior][imBoundary] = 'F'
		m[imBoundary][imInterior] = 'F'
		m[imBoundary][imBoundary] = 'F'
		m[imInterior][imExterior] = 'F'
		m[imExterior][imInterior] = 'F'
		m[imBoundary][imExterior] = 'F'
		m[imExterior][imBoundary] = 'F'
		return m
	}

	aStart, aEnd := a[0], a[len(a)-1]
	bStart, bEnd := b[0], b[len(b)-1]
	isABoundary := func(p XY) bool { return p.Equal(aStart) || p.Equal(aEnd) }
	isBBoundary := func(p XY) bool { return p.Equal(bStart) || p.Equal(bEnd) }

	sawInteriorPoint := false
	sawOverlap := false
	sawBoundaryBoundary := false
	sawInteriorToOtherBoundary := false
	sawBoundaryToOtherInterior := false

	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			kind, pt, _ := segmentIntersection(a[i], a[i+1], b[j], b[j+1])
			switch kind {
			case overlapIntersection:
				sawOverlap = true
			case pointIntersection:
				aBoundaryHit := isABoundary(pt)
				bBoundaryHit := isBBoundary(pt)
				switch {
				case aBoundaryHit && bBoundaryHit:
					sawBoundaryBoundary = true
				case aBoundaryHit && !bBoundaryHit:
					sawBoundaryToOtherInterior = true
				case !aBoundaryHit && bBoundaryHit:
					sawInteriorToOtherBoundary = true
				default:
					sawInteriorPoint = true
				}
			}
		}
	}

	switch {
	case sawOverlap:
		m[imInterior][imInterior] = '1'
	case sawInteriorPoint:
		m[imInterior][imInterior] = '0'
	default:
		m[imInterior][imInterior] = 'F'
	}
	if sawInteriorToOtherBoundary {
		m[imInterior][imBoundary] = '0'
	} else {
		m[imInterior][imBoundary] = 'F'
	}
	if sawBoundaryToOtherInterior {
		m[imBoundary][imInterior] = '0'
	} else {
		m[imBoundary][imInterior] = 'F'
	}
	if sawBoundaryBoundary {
		m[imBoundary][imBoundary] = '0'
	} else {
		m[imBoundary][imBoundary] = 'F'
	}

	return m
}
