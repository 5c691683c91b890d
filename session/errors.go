// Copyright © 2026 The peek authors

package session

import "fmt"

// NotFoundError indicates a display name absent from the current
// directory.  It is a user-facing condition: the prompt reports it and
// the operation aborts without touching the suspended script.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no variable named %q in the current listing", e.Name)
}

// InconsistencyError indicates that the name the host acknowledged at a
// resolved (level, slot) location did not match the recorded original
// name.  The stack has shifted relative to directory-build time; the
// operation aborts rather than returning data from the wrong slot.
type InconsistencyError struct {
	Name     string // display name being accessed
	Expected string // recorded original name
	Actual   string // name the host reported at the resolved location
	Level    int
	Slot     int
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("internal error: variable %q resolved to slot %d at level %d holding %q, expected %q",
		e.Name, e.Slot, e.Level, e.Actual, e.Expected)
}
