package topo

import "github.com/katalvlaran/lvtopo/tracing"

// Option configures a Topology at construction time, the functional-options
// idiom lvlath/core uses for GraphOption (WithDirected, WithWeighted, …).
type Option func(*Topology)

// WithTracer attaches a diagnostic Tracer. The default is tracing.Noop(),
// so tracing never costs anything unless a caller opts in (spec.md §9).
func WithTracer(t tracing.Tracer) Option {
	return func(top *Topology) { top.tracer = t }
}

// WithTolerance sets the default coordinate-matching tolerance used by
// GetEdgeByPoint when a caller passes tol<=0. The zero value of a fresh
// Topology (before this option runs) is 1e-8.
func WithTolerance(tol float64) Option {
	return func(top *Topology) { top.defaultTolerance = tol }
}
