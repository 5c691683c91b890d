// Copyright © 2026 The peek authors

// Package tracer provides suspension-cycle tracers that annotate an
// application's distributed traces with one span per suspension and one
// event per variable access.  Two backends are provided, OpenTelemetry
// and OpenCensus; both implement session.Tracer and stay dormant until
// Enable is called, so a tracer can be wired in unconditionally and
// switched on only when the surrounding application is actually tracing.
package tracer

// spanName is the name given to every suspension-cycle span.
const spanName = "suspension"

// tracer carries the state shared by both backends.
type tracer struct {
	enabled bool
	name    string
}

// Option configures a tracer.
type Option func(*tracer)

// WithTracerName sets the instrumentation name spans are attributed to.
// The default is "peek".
func WithTracerName(name string) Option {
	return func(t *tracer) { t.name = name }
}

func (t *tracer) applyConfigs(opts ...Option) {
	t.name = "peek"
	for _, opt := range opts {
		opt(t)
	}
}

// IsEnabled reports whether the tracer records anything.
func (t *tracer) IsEnabled() bool {
	return t.enabled
}
