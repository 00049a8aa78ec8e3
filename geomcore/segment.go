package geomcore

import "math"

// intersectionKind classifies how two line segments relate.
type intersectionKind int

const (
	noIntersection intersectionKind = iota
	pointIntersection
	overlapIntersection
)

const epsilon = 1e-9

// cross returns the z-component of (b-a) x (c-a), used throughout as the
// orientation test: positive means c is counter-clockwise from a->b.
func cross(a, b, c XY) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegmentBounded(p, a, b XY) bool {
	return math.Min(a.X, b.X)-epsilon <= p.X && p.X <= math.Max(a.X, b.X)+epsilon &&
		math.Min(a.Y, b.Y)-epsilon <= p.Y && p.Y <= math.Max(a.Y, b.Y)+epsilon
}

// segmentIntersection determines how segment p1-p2 relates to segment
// p3-p4, returning the kind and (for a single point) the intersection point.
// Collinear overlaps return overlapIntersection with pt and pt2 left as zero
// values; pt2 is never set.
func segmentIntersection(p1, p2, p3, p4 XY) (kind intersectionKind, pt XY, pt2 XY) {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if isZero(d1) && isZero(d2) && isZero(d3) && isZero(d4) {
		return collinearOverlap(p1, p2, p3, p4)
	}

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return pointIntersection, segmentPoint(p1, p2, p3, p4), XY{}
	}

	// Endpoint-touch cases: one endpoint of one segment lies exactly on the
	// other segment.
	if isZero(d1) && onSegmentBounded(p1, p3, p4) {
		return pointIntersection, p1, XY{}
	}
	if isZero(d2) && onSegmentBounded(p2, p3, p4) {
		return pointIntersection, p2, XY{}
	}
	if isZero(d3) && onSegmentBounded(p3, p1, p2) {
		return pointIntersection, p3, XY{}
	}
	if isZero(d4) && onSegmentBounded(p4, p1, p2) {
		return pointIntersection, p4, XY{}
	}

	return noIntersection, XY{}, XY{}
}

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}

// segmentPoint computes the actual intersection point of two properly
// crossing segments via the standard parametric line intersection formula.
func segmentPoint(p1, p2, p3, p4 XY) XY {
	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	x3, y3, x4, y4 := p3.X, p3.Y, p4.X, p4.Y
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if isZero(denom) {
		return p1
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return XY{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}
}

// collinearOverlap handles the case where all four points are collinear. It
// returns overlapIntersection when the two segments share more than a single
// point, pointIntersection when they touch at exactly one endpoint, and
// noIntersection when they are disjoint along the shared line.
func collinearOverlap(p1, p2, p3, p4 XY) (intersectionKind, XY, XY) {
	// Parametrize along the dominant axis so we can compare scalar ranges.
	axisX := math.Abs(p2.X-p1.X) >= math.Abs(p2.Y-p1.Y)
	param := func(p XY) float64 {
		if axisX {
			return p.X
		}
		return p.Y
	}
	a1, a2 := param(p1), param(p2)
	b1, b2 := param(p3), param(p4)
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	lo := math.Max(a1, b1)
	hi := math.Min(a2, b2)
	if lo > hi+epsilon {
		return noIntersection, XY{}, XY{}
	}
	if math.Abs(hi-lo) <= epsilon {
		// Touch at a single point; recover XY from whichever endpoint sits there.
		for _, p := range []XY{p1, p2, p3, p4} {
			if math.Abs(param(p)-lo) <= epsilon {
				return pointIntersection, p, XY{}
			}
		}
		return noIntersection, XY{}, XY{}
	}
	return overlapIntersection, XY{}, XY{}
}
