// Copyright © 2026 The peek authors

package session

import (
	"fmt"
	"strings"

	"github.com/peeklua/peek/host"
)

// walkBase is the first stack level enumerated.  Level 0 is the function
// performing the walk itself (the suspension builtin in a host adapter),
// so the walk starts one level up; Session.offset skips further
// script-side wrapper frames on top of that.
const walkBase = 1

// ListingHeader precedes the per-frame blocks in every listing.
const ListingHeader = "Variables visible from the suspension point:\n"

// ListingBanner follows the per-frame blocks and announces the prompt.
const ListingBanner = `Interactive prompt. Type "help" for commands, "cont" to resume.` + "\n"

// discardName is the conventional throwaway variable name; such slots are
// never enumerated.
const discardName = "_"

// walk enumerates every eligible local variable from the starting level
// upward, assigns display names, and assembles the listing text.  Frame
// blocks are accumulated with each newly walked frame placed above the
// text gathered so far, so the innermost frame ends up immediately above
// the banner.
func (s *Session) walk() {
	var text string
	start := walkBase + s.offset
	for level := start; ; level++ {
		frame, ok := s.rt.Frame(level)
		if !ok {
			break
		}
		s.frames++
		label := frame.Name
		if label == "" {
			label = fmt.Sprintf("anon%d", level)
		}
		var block strings.Builder
		fmt.Fprintf(&block, "In %s (%d):\n", label, level)
		for slot := 1; ; slot++ {
			name, v, ok := s.rt.ReadLocal(level, slot)
			if !ok {
				break
			}
			if skipName(name) {
				continue
			}
			if s.rt.Classify(v) == host.KindCallable {
				continue
			}
			display := s.displayName(name, label, level == start)
			s.insert(display, VariableRecord{
				Level:        level,
				Slot:         slot,
				OriginalName: name,
			})
			if display == name {
				fmt.Fprintf(&block, "    %s\n", display)
			} else {
				fmt.Fprintf(&block, "    %s (%s)\n", display, name)
			}
		}
		text = block.String() + text
	}
	s.listing = ListingHeader + text + ListingBanner
}

// skipName reports whether a local slot name is excluded from
// enumeration: the discard name and host-synthetic names (loop control
// slots and similar, which hosts conventionally parenthesize).
func skipName(name string) bool {
	if name == discardName {
		return true
	}
	return strings.HasPrefix(name, "(")
}
