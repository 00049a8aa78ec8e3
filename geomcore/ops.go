package geomcore

import "math"

// twoPi is kept as a named constant so the normalization below reads as
// "wrap into a full turn" rather than a magic literal.
const twoPi = 2 * math.Pi

// Azimuth returns the angle of the ray from a to b, measured counter-
// clockwise from the positive X axis and normalized into [0, 2π). It is
// undefined (returns 0) when a and b coincide — callers never invoke it on
// a degenerate segment because edge coordinate sequences are simple curves
// with distinct consecutive points.
func Azimuth(a, b XY) float64 {
	az := math.Atan2(b.Y-a.Y, b.X-a.X)
	if az < 0 {
		az += twoPi
	}
	return az
}

// NormalizeAngle wraps an arbitrary angle (typically a difference of two
// azimuths) into [0, 2π). Used by the adjacent-edge finder (spec.md §4.4) to
// compute the clockwise sweep from the new half-edge to each candidate.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Equals reports whether two coordinate sequences describe the same curve,
// either in the same direction or reversed. Used by the crossing validator's
// "coincident edge" check.
func Equals(a, b []XY) bool {
	if len(a) != len(b) {
		return false
	}
	sameDir := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			sameDir = false
			break
		}
	}
	if sameDir {
		return true
	}
	reversed := true
	for i := range a {
		if !a[i].Equal(b[len(b)-1-i]) {
			reversed = false
			break
		}
	}
	return reversed
}

// Distance returns the minimum distance from point p to any point on the
// polyline coords.
func Distance(p XY, coords []XY) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(coords); i++ {
		d := distToSegment(p, coords[i], coords[i+1])
		if d < best {
			best = d
		}
	}
	if len(coords) == 1 {
		return math.Hypot(p.X-coords[0].X, p.Y-coords[0].Y)
	}
	return best
}

func distToSegment(p, a, b XY) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	wx, wy := p.X-a.X, p.Y-a.Y
	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return math.Hypot(wx, wy)
	}
	t := (wx*vx + wy*vy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX, projY := a.X+t*vx, a.Y+t*vy
	return math.Hypot(p.X-projX, p.Y-projY)
}

// IsSimple reports whether a coordinate sequence is free of self-intersection:
// no two non-adjacent segments touch or cross, and no segment's interior
// passes through a vertex of the curve other than its own endpoints.
// Adjacent segments are allowed to share their common vertex. A closed curve
// (first point equals last) is allowed to close at that shared vertex only.
func IsSimple(coords []XY) bool {
	n := len(coords)
	if n < 2 {
		return false
	}
	closed := coords[0].Equal(coords[n-1])
	for i := 0; i+1 < n; i++ {
		for j := i + 1; j+1 < n; j++ {
			adjacent := j == i+1
			// The closing segment of a closed ring is adjacent to the first
			// segment through the shared start/end vertex.
			wrapAdjacent := closed && i == 0 && j == n-2
			kind, _, _ := segmentIntersection(coords[i], coords[i+1], coords[j], coords[j+1])
			if kind == noIntersection {
				continue
			}
			if adjacent || wrapAdjacent {
				// Sharing exactly the common endpoint is fine; anything more
				// (overlap, or touching at a second point) is not simple.
				if kind == pointIntersection {
					continue
				}
				return false
			}
			return false
		}
	}
	return true
}

// Intersects reports whether two polylines share any point (interior or
// boundary).
func Intersects(a, b []XY) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			kind, _, _ := segmentIntersection(a[i], a[i+1], b[j], b[j+1])
			if kind != noIntersection {
				return true
			}
		}
	}
	return false
}

// Split divides coords at the point on the curve nearest to at (which must
// lie on some segment of coords, per modEdgeSplit's precondition) into two
// sequences sharing that point: parts[0] runs from coords[0] to at, parts[1]
// runs from at to coords[len(coords)-1].
func Split(coords []XY, at XY) (before, after []XY, ok bool) {
	for i := 0; i+1 < len(coords); i++ {
		if !onSegment(at, coords[i], coords[i+1]) {
			continue
		}
		before = append(append([]XY{}, coords[:i+1]...), at)
		after = append([]XY{at}, coords[i+1:]...)
		return before, after, true
	}
	return nil, nil, false
}

func onSegment(p, a, b XY) bool {
	return distToSegment(p, a, b) < 1e-9
}
