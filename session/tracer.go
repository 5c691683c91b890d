// Copyright © 2026 The peek authors

package session

// Tracer receives suspension-cycle annotations.  Implementations live in
// x/tracer; a nil tracer costs nothing.  Tracer calls use a two-check
// gate so a tracer can remain attached but dormant:
//
//	if t := s.tracer; t != nil && t.IsEnabled() { ... }
type Tracer interface {
	// IsEnabled reports whether the tracer is actively recording.
	IsEnabled() bool

	// BeginCycle is called once per suspension after the directory has
	// been built.  The returned function is called when the script
	// resumes, ending the cycle.
	BeginCycle(info CycleInfo) func()

	// RecordAccess is called after every accessor operation with the
	// operation name ("get" or "set"), the display name involved, and the
	// operation's error, if any.
	RecordAccess(op, display string, err error)
}

// CycleInfo summarizes one suspension cycle for tracing.
type CycleInfo struct {
	// Trigger describes what initiated the suspension ("call", "poll").
	Trigger string

	// Frames is the number of stack frames walked.
	Frames int

	// Variables is the number of directory entries produced.
	Variables int
}

// BeginCycle starts a tracer cycle for this session.  The caller must
// invoke the returned function when the suspension ends.  With no tracer
// attached (or a dormant one) the returned function is a no-op.
func (s *Session) BeginCycle(trigger string) func() {
	if t := s.tracer; t != nil && t.IsEnabled() {
		return t.BeginCycle(CycleInfo{
			Trigger:   trigger,
			Frames:    s.frames,
			Variables: len(s.dir),
		})
	}
	return func() {}
}

func (s *Session) recordAccess(op, display string, err error) {
	if t := s.tracer; t != nil && t.IsEnabled() {
		t.RecordAccess(op, display, err)
	}
}
