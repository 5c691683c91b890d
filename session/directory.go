// Copyright © 2026 The peek authors

package session

// VariableRecord locates one enumerated variable.  Level and Slot
// identify the storage location at directory-build time; the accessor
// re-derives the effective level at access time (see Session.Get) because
// the stack shape can differ between the two.
type VariableRecord struct {
	// Level is the stack level the variable's frame was observed at
	// during the walk.
	Level int

	// Slot is the 1-based ordinal of the variable within its frame's
	// local list.
	Slot int

	// OriginalName is the variable's name as declared in source.
	OriginalName string
}

// marker is appended to a display name, repeatedly if necessary, when
// frame-prefixing cannot make it unique.  An underscore stays typable at
// the prompt and survives shell-style tokenization.
const marker = "_"

// prefixSep joins a frame label and a variable name when disambiguating
// across frames.
const prefixSep = "/"

// displayName computes a unique display name for a variable named name
// living in the frame labeled label.  Names already present in the
// directory are disambiguated by frame-prefixing first (only for frames
// other than the innermost one being scanned) and by marker-appending
// otherwise.  Shadowing within a single frame therefore always resolves
// by marker, never by prefix.
func (s *Session) displayName(name, label string, innermost bool) string {
	if _, taken := s.dir[name]; !taken {
		return name
	}
	cand := name
	if !innermost {
		cand = label + prefixSep + name
		if _, taken := s.dir[cand]; !taken {
			return cand
		}
	}
	for {
		cand += marker
		if _, taken := s.dir[cand]; !taken {
			return cand
		}
	}
}

// insert records a variable under its display name and preserves
// enumeration order for listings and completion.
func (s *Session) insert(display string, rec VariableRecord) {
	s.dir[display] = rec
	s.names = append(s.names, display)
}

// Lookup returns the record for a display name.
func (s *Session) Lookup(display string) (VariableRecord, bool) {
	rec, ok := s.dir[display]
	return rec, ok
}

// Names returns all display names in enumeration order (innermost frame
// first, matching the walk).  The returned slice is a copy.
func (s *Session) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of enumerated variables.
func (s *Session) Len() int {
	return len(s.dir)
}
