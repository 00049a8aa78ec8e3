// Package tracing provides the pluggable diagnostic-logging interface
// spec.md §9 calls for: topo emits one trace line for every event a mutation
// emits (no trace calls are made at the mutations' internal decision
// points), and tracing is a no-op unless a caller opts in, mirroring the slog-based logger wrapper in
// soundprediction-go-graphiti/pkg/logger (NewDefaultLogger/NewLogger over a
// custom handler) rather than hand-rolling a print-based tracer.
package tracing

import (
	"fmt"
	"log/slog"
)

// Tracer receives free-form diagnostic messages from topo's mutations. It is
// intentionally narrower than slog.Logger so embedding a different logging
// backend (zap, logrus, or nothing at all) only requires implementing one
// method.
type Tracer interface {
	Tracef(format string, args ...any)
}

// noop discards every trace call; it is the default so constructing a
// Topology never pays for logging unless asked.
type noop struct{}

func (noop) Tracef(string, ...any) {}

// Noop returns the default no-op Tracer.
func Noop() Tracer { return noop{} }

// slogTracer adapts a *slog.Logger to the Tracer interface at Debug level,
// the level NewDefaultLogger/NewLogger in the graphiti logger package use
// for verbose, opt-in diagnostics.
type slogTracer struct {
	log *slog.Logger
}

// NewSlog wraps an existing *slog.Logger as a Tracer. Pass nil to get
// slog.Default().
func NewSlog(log *slog.Logger) Tracer {
	if log == nil {
		log = slog.Default()
	}
	return slogTracer{log: log}
}

func (t slogTracer) Tracef(format string, args ...any) {
	t.log.Debug(fmt.Sprintf(format, args...))
}
