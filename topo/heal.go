package topo

import "github.com/katalvlaran/lvtopo/geomcore"

// ModEdgeHeal is a reserved hook (spec.md §4.9/§9): healing two edges into
// one is out of scope for the CORE, and its contract (which edge survives,
// how ring pointers of a third incident edge are chosen) is unspecified.
func (t *Topology) ModEdgeHeal(e1, e2 EdgeID) (NodeID, error) {
	return 0, ErrNotImplemented
}

// NewEdgeHeal is the other reserved healing hook (spec.md §4.9).
func (t *Topology) NewEdgeHeal(e1, e2 EdgeID) (NodeID, error) {
	return 0, ErrNotImplemented
}

// NewEdgesSplit is the reserved multi-way split hook (spec.md §4.10).
func (t *Topology) NewEdgesSplit(e EdgeID, at geomcore.XY) (NodeID, error) {
	return 0, ErrNotImplemented
}
