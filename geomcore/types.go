package geomcore

import "math"

// XY is a single 2D coordinate. lvtopo never carries a Z value: the CORE
// edge subsystem is defined entirely in terms of the planar (x,y) subdivision.
type XY struct {
	X, Y float64
}

// Equal reports whether two coordinates are identical (exact comparison;
// callers that need a tolerance use Distance instead).
func (a XY) Equal(b XY) bool {
	return a.X == b.X && a.Y == b.Y
}

// Box is an axis-aligned bounding box, kept degenerate (MinX==MaxX etc.) for
// single-point geometries.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundsOf computes the tight axis-aligned bounding box of a coordinate
// sequence. Panics on an empty sequence — callers must not call it with one,
// since every live edge has at least two points (spec.md invariant I1).
func BoundsOf(coords []XY) Box {
	b := Box{MinX: coords[0].X, MinY: coords[0].Y, MaxX: coords[0].X, MaxY: coords[0].Y}
	for _, c := range coords[1:] {
		b.MinX = math.Min(b.MinX, c.X)
		b.MinY = math.Min(b.MinY, c.Y)
		b.MaxX = math.Max(b.MaxX, c.X)
		b.MaxY = math.Max(b.MaxY, c.Y)
	}
	return b
}

// Expand returns a box grown by tol in every direction, used to build R-tree
// query windows around a point (getEdgeByPoint) per spec.md §4.2.
func (b Box) Expand(tol float64) Box {
	return Box{MinX: b.MinX - tol, MinY: b.MinY - tol, MaxX: b.MaxX + tol, MaxY: b.MaxY + tol}
}

// Intersects reports whether two boxes overlap or touch.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}
