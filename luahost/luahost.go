// Copyright © 2026 The peek authors

// Package luahost adapts a gopher-lua interpreter to the host
// introspection interfaces.  The adapter leans entirely on the
// interpreter's own debug facility (GetStack, GetLocal, SetLocal) so the
// levels and slots it hands out are the interpreter's native coordinates,
// not a private numbering.
package luahost

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/peeklua/peek/host"
)

// Runtime implements host.Runtime (and host.Evaluator) on top of a
// suspended *lua.LState.  A Runtime is only valid while the state's
// script is stopped inside a builtin; it holds no state of its own
// beyond the interpreter pointer.
type Runtime struct {
	l *lua.LState
}

var _ host.Runtime = (*Runtime)(nil)
var _ host.Evaluator = (*Runtime)(nil)

// New returns an adapter for the given interpreter state.
func New(l *lua.LState) *Runtime {
	return &Runtime{l: l}
}

// State returns the underlying interpreter.
func (rt *Runtime) State() *lua.LState {
	return rt.l
}

// Frame returns metadata for the activation record at the given level.
// Level 0 is the builtin currently running on the Go side.
func (rt *Runtime) Frame(level int) (host.Frame, bool) {
	dbg, ok := rt.l.GetStack(level)
	if !ok {
		return host.Frame{}, false
	}
	// GetInfo fills in the function name when one is known.  An error
	// here just leaves the frame unnamed.
	_, _ = rt.l.GetInfo("nSl", dbg, lua.LNil)
	name := dbg.Name
	if name == "" && dbg.What == "main" {
		name = "main"
	}
	return host.Frame{Level: level, Name: name}, true
}

// ReadLocal returns the local variable in the given 1-based slot of the
// frame at the given level.  The interpreter reports a missing slot with
// an empty name.
func (rt *Runtime) ReadLocal(level, slot int) (string, host.Value, bool) {
	dbg, ok := rt.l.GetStack(level)
	if !ok {
		return "", nil, false
	}
	name, lv := rt.l.GetLocal(dbg, slot)
	if name == "" {
		return "", nil, false
	}
	return name, lv, true
}

// WriteLocal overwrites the local variable in the given slot and returns
// the name the interpreter acknowledges for it.
func (rt *Runtime) WriteLocal(level, slot int, v host.Value) (string, bool) {
	dbg, ok := rt.l.GetStack(level)
	if !ok {
		return "", false
	}
	name := rt.l.SetLocal(dbg, slot, toLua(v))
	if name == "" {
		return "", false
	}
	return name, true
}

// Classify maps an interpreter value to a display kind.
func (rt *Runtime) Classify(v host.Value) host.Kind {
	lv, ok := v.(lua.LValue)
	if !ok {
		return host.KindOther
	}
	switch lv.Type() {
	case lua.LTNil:
		return host.KindNil
	case lua.LTBool:
		return host.KindBool
	case lua.LTNumber:
		return host.KindNumber
	case lua.LTString:
		return host.KindString
	case lua.LTFunction:
		return host.KindCallable
	case lua.LTTable, lua.LTUserData, lua.LTThread:
		return host.KindComposite
	default:
		return host.KindOther
	}
}

// Display renders a value the way the interpreter's print would,
// honoring a __tostring metamethod when one is defined.
func (rt *Runtime) Display(v host.Value) string {
	lv, ok := v.(lua.LValue)
	if !ok {
		return "<foreign value>"
	}
	if s, ok := rt.l.ToStringMeta(lv).(lua.LString); ok {
		return string(s)
	}
	return lv.String()
}

// FromLiteral converts a parsed prompt literal into an interpreter value.
func (rt *Runtime) FromLiteral(lit host.Literal) host.Value {
	switch lit.Kind {
	case host.KindString:
		return lua.LString(lit.Str)
	case host.KindNumber:
		return lua.LNumber(lit.Num)
	case host.KindBool:
		return lua.LBool(lit.Bool)
	default:
		return lua.LNil
	}
}

// EvalText compiles and runs src in the suspended interpreter.  The
// chunk sees the script's globals; output goes to the script's normal
// print destination.
func (rt *Runtime) EvalText(src string) error {
	return rt.l.DoString(src)
}

func toLua(v host.Value) lua.LValue {
	if v == nil {
		return lua.LNil
	}
	if lv, ok := v.(lua.LValue); ok {
		return lv
	}
	return lua.LNil
}
