// Copyright © 2026 The peek authors

// Package trigger decides when a polling script should suspend.  The
// trigger condition is the existence of a marker file; a positive check
// consumes the marker (removes it) before reporting true, so one marker
// causes exactly one suspension.
package trigger

import "os"

// Trigger checks a marker file by path.
type Trigger struct {
	path    string
	watcher *Watcher
}

// New returns a polling trigger for the given marker path.
func New(path string) *Trigger {
	return &Trigger{path: path}
}

// NewWatched returns a trigger that uses a filesystem watcher to answer
// negative checks without a stat call.  The caller owns the returned
// trigger and should Close it when the script finishes.
func NewWatched(path string) (*Trigger, error) {
	w, err := Watch(path)
	if err != nil {
		return nil, err
	}
	return &Trigger{path: path, watcher: w}, nil
}

// Path returns the marker path.
func (t *Trigger) Path() string {
	return t.path
}

// Check reports whether the marker currently exists and, when it does,
// consumes it.  A marker that exists but cannot be removed still reports
// true; the removal is best effort so a stuck marker cannot wedge the
// script in a suspension loop forever, only re-trigger it.
func (t *Trigger) Check() bool {
	if t.watcher != nil && !t.watcher.Armed() {
		return false
	}
	if _, err := os.Stat(t.path); err != nil {
		return false
	}
	_ = os.Remove(t.path)
	if t.watcher != nil {
		t.watcher.Reset()
	}
	return true
}

// Close releases the watcher, if any.
func (t *Trigger) Close() error {
	if t.watcher == nil {
		return nil
	}
	return t.watcher.Close()
}
