// Package geomcore provides the pure coordinate-array geometry primitives
// that the topo package's CORE edge subsystem treats as an external
// collaborator: Azimuth, Equals, Distance, IsSimple, Intersects, Split, and
// Relate (a DE-9IM matcher).
//
// None of these functions know anything about nodes, edges, faces or rings —
// they operate purely on []XY coordinate sequences, the way spec.md describes
// them. topo calls them through the small set of free functions in this
// package rather than through an interface, since lvtopo ships exactly one
// concrete geometry engine; callers embedding lvtopo who need a different
// engine (e.g. a GEOS-backed one for production-grade DE-9IM, the way
// missinglink-simplefeatures/geos binds libgeos) can swap the import with
// minimal surface change, since every function here is free-standing.
package geomcore
