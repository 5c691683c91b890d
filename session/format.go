// Copyright © 2026 The peek authors

package session

import (
	"fmt"

	"github.com/peeklua/peek/host"
)

// nilToken is the fixed display token for the host's absent/nil value.
const nilToken = "[nil]"

// Format renders a host value as a short display token tagged by kind:
// strings are quoted, numbers parenthesized, booleans angle-bracketed,
// nil becomes a fixed sentinel, and composite values are delegated to the
// host's own display mechanism so custom rendering is honored.  Format is
// total: it never fails and never mutates the value.
func Format(rt host.Runtime, v host.Value) string {
	switch rt.Classify(v) {
	case host.KindString:
		return fmt.Sprintf("%q", rt.Display(v))
	case host.KindNumber:
		return "(" + rt.Display(v) + ")"
	case host.KindBool:
		return "<" + rt.Display(v) + ">"
	case host.KindNil:
		return nilToken
	case host.KindComposite:
		return rt.Display(v)
	default:
		return rt.Display(v)
	}
}
