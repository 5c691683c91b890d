// Copyright © 2026 The peek authors

package session

import (
	"fmt"
	"io"

	"github.com/peeklua/peek/host"
)

// resolve maps a display name to a live (level, slot) location.  shift is
// the number of frames the current access path has pushed on top of the
// stack shape observed at build time: 0 when the access runs on the Go
// side of the suspension, larger when it runs through script-side
// indirection (an accessor exposed to the script plus the evaluated chunk
// invoking it).  The host must acknowledge the recorded original name at
// the shifted location or the resolution fails.
func (s *Session) resolve(name string, shift int) (rec VariableRecord, level int, v host.Value, err error) {
	rec, ok := s.dir[name]
	if !ok {
		return rec, 0, nil, &NotFoundError{Name: name}
	}
	level = rec.Level + shift
	actual, v, ok := s.rt.ReadLocal(level, rec.Slot)
	if !ok || actual != rec.OriginalName {
		return rec, level, nil, &InconsistencyError{
			Name:     name,
			Expected: rec.OriginalName,
			Actual:   actual,
			Level:    level,
			Slot:     rec.Slot,
		}
	}
	return rec, level, v, nil
}

// Get returns the current value of the variable with the given display
// name.  A nil value with a non-nil error indicates the lookup or the
// consistency check failed; the suspended script is untouched either way.
func (s *Session) Get(name string, shift int) (host.Value, error) {
	_, _, v, err := s.resolve(name, shift)
	s.recordAccess("get", name, err)
	return v, err
}

// Set overwrites the variable with the given display name and returns the
// old and new values.  The write only happens after the consistency check
// passes, and the host's write acknowledgment must name the same original
// variable; a failed set leaves the original value intact.
func (s *Session) Set(name string, v host.Value, shift int) (old, cur host.Value, err error) {
	rec, level, old, err := s.resolve(name, shift)
	if err != nil {
		s.recordAccess("set", name, err)
		return nil, nil, err
	}
	ack, ok := s.rt.WriteLocal(level, rec.Slot, v)
	if !ok || ack != rec.OriginalName {
		err = &InconsistencyError{
			Name:     name,
			Expected: rec.OriginalName,
			Actual:   ack,
			Level:    level,
			Slot:     rec.Slot,
		}
		s.recordAccess("set", name, err)
		return nil, nil, err
	}
	s.recordAccess("set", name, nil)
	return old, v, nil
}

// Print resolves a display name and writes "name = value" using the
// kind-tagged formatter.
func (s *Session) Print(w io.Writer, name string, shift int) error {
	v, err := s.Get(name, shift)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s = %s\n", name, s.Format(v))
	return err
}
