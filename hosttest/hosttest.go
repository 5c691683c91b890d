// Copyright © 2026 The peek authors

// Package hosttest provides a scripted host.Runtime for testing the
// session core without a real script runtime.  Frames and locals are
// declared literally, and the fake stack can be grown or shrunk between
// operations to simulate the frame shifts a real access path introduces.
package hosttest

import (
	"strconv"

	"github.com/peeklua/peek/host"
)

// Value is a fake host value carrying its own display kind and text.
type Value struct {
	Kind host.Kind
	Text string
}

// Str returns a fake string value.
func Str(s string) Value { return Value{Kind: host.KindString, Text: s} }

// Num returns a fake numeric value.
func Num(n float64) Value {
	return Value{Kind: host.KindNumber, Text: strconv.FormatFloat(n, 'g', -1, 64)}
}

// Bool returns a fake boolean value.
func Bool(b bool) Value {
	return Value{Kind: host.KindBool, Text: strconv.FormatBool(b)}
}

// Nil returns the fake nil value.
func Nil() Value { return Value{Kind: host.KindNil, Text: "nil"} }

// Func returns a fake callable value.
func Func(name string) Value {
	return Value{Kind: host.KindCallable, Text: "function: " + name}
}

// Table returns a fake composite value rendering as text.
func Table(text string) Value {
	return Value{Kind: host.KindComposite, Text: text}
}

// Var is one scripted local slot.
type Var struct {
	Name  string
	Value Value
}

// Frame is one scripted stack frame.  An empty Name simulates a frame the
// host cannot name.
type Frame struct {
	Name string
	Vars []Var
}

// Runtime is a scripted host.Runtime.  Frames are ordered innermost
// first and occupy levels starting at 1, matching the convention that
// level 0 is the function performing the inspection.
type Runtime struct {
	frames []Frame

	// RejectWrites forces every WriteLocal to fail.
	RejectWrites bool

	// BadAck, when non-empty, is returned as the acknowledged name of
	// every successful write, for exercising consistency failures.
	BadAck string

	// EvalFunc handles delegated evaluation of prompt input.  Nil means
	// evaluation is unsupported.
	EvalFunc func(src string) error
}

var _ host.Runtime = (*Runtime)(nil)
var _ host.Evaluator = (*Runtime)(nil)

// NewRuntime returns a runtime with the given frames, innermost first.
func NewRuntime(frames ...Frame) *Runtime {
	return &Runtime{frames: frames}
}

// PushFrame prepends a frame below the existing ones, shifting every
// existing frame one level up.  Tests use this to simulate the extra
// frames an access path pushes after directory-build time.
func (r *Runtime) PushFrame(f Frame) {
	r.frames = append([]Frame{f}, r.frames...)
}

// PopFrame removes the innermost frame.
func (r *Runtime) PopFrame() {
	if len(r.frames) > 0 {
		r.frames = r.frames[1:]
	}
}

func (r *Runtime) frame(level int) (Frame, bool) {
	idx := level - 1
	if idx < 0 || idx >= len(r.frames) {
		return Frame{}, false
	}
	return r.frames[idx], true
}

// Frame implements host.Runtime.
func (r *Runtime) Frame(level int) (host.Frame, bool) {
	f, ok := r.frame(level)
	if !ok {
		return host.Frame{}, false
	}
	return host.Frame{Level: level, Name: f.Name}, true
}

// ReadLocal implements host.Runtime.
func (r *Runtime) ReadLocal(level, slot int) (string, host.Value, bool) {
	f, ok := r.frame(level)
	if !ok || slot < 1 || slot > len(f.Vars) {
		return "", nil, false
	}
	v := f.Vars[slot-1]
	return v.Name, v.Value, true
}

// WriteLocal implements host.Runtime.
func (r *Runtime) WriteLocal(level, slot int, v host.Value) (string, bool) {
	if r.RejectWrites {
		return "", false
	}
	f, ok := r.frame(level)
	if !ok || slot < 1 || slot > len(f.Vars) {
		return "", false
	}
	val, ok := v.(Value)
	if !ok {
		return "", false
	}
	r.frames[level-1].Vars[slot-1].Value = val
	if r.BadAck != "" {
		return r.BadAck, true
	}
	return f.Vars[slot-1].Name, true
}

// Classify implements host.Runtime.
func (r *Runtime) Classify(v host.Value) host.Kind {
	if val, ok := v.(Value); ok {
		return val.Kind
	}
	return host.KindOther
}

// Display implements host.Runtime.
func (r *Runtime) Display(v host.Value) string {
	if val, ok := v.(Value); ok {
		return val.Text
	}
	return "<foreign value>"
}

// FromLiteral implements host.Runtime.
func (r *Runtime) FromLiteral(lit host.Literal) host.Value {
	switch lit.Kind {
	case host.KindString:
		return Str(lit.Str)
	case host.KindNumber:
		return Num(lit.Num)
	case host.KindBool:
		return Bool(lit.Bool)
	default:
		return Nil()
	}
}

// EvalText implements host.Evaluator.
func (r *Runtime) EvalText(src string) error {
	if r.EvalFunc == nil {
		return errNoEval
	}
	return r.EvalFunc(src)
}

type noEvalError struct{}

func (noEvalError) Error() string { return "evaluation is not supported by this runtime" }

var errNoEval = noEvalError{}
