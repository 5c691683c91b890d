// Copyright © 2026 The peek authors

// Package session implements the core of the inspection shim: walking a
// suspended script's call stack, naming every visible local variable
// uniquely, and reading or writing those variables by name while the
// script remains suspended.
//
// A Session is built fresh at every suspension and discarded when the
// script resumes; records never survive across suspensions, so stale
// stack coordinates cannot leak between cycles.  Nothing in this package
// is safe for concurrent use, and nothing needs to be: the script is
// frozen for the session's entire lifetime.
package session

import "github.com/peeklua/peek/host"

// Session owns the variable directory and listing text for one
// suspend/resume cycle.
type Session struct {
	rt     host.Runtime
	offset int
	tracer Tracer

	dir     map[string]VariableRecord
	names   []string
	frames  int
	listing string
}

// Option configures a Session during Build.
type Option func(*Session)

// WithOffset skips additional script-side frames at the start of the
// walk.  Use a non-zero offset when the suspension is reached through a
// wrapper function in the script, so the wrapper's own frame is not
// enumerated.
func WithOffset(offset int) Option {
	return func(s *Session) {
		if offset > 0 {
			s.offset = offset
		}
	}
}

// WithTracer attaches a suspension-cycle tracer.
func WithTracer(t Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// Build walks the suspended script's stack and returns a populated
// session.  The runtime must already be suspended; Build performs no
// suspension of its own.
func Build(rt host.Runtime, opts ...Option) *Session {
	s := &Session{
		rt:  rt,
		dir: make(map[string]VariableRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.walk()
	return s
}

// Runtime returns the host runtime the session inspects.
func (s *Session) Runtime() host.Runtime {
	return s.rt
}

// Listing returns the full variable listing assembled at build time,
// including the fixed header and prompt banner.
func (s *Session) Listing() string {
	return s.listing
}

// Format renders a host value as a short kind-tagged display token.
func (s *Session) Format(v host.Value) string {
	return Format(s.rt, v)
}
