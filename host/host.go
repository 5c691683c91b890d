// Package host declares the capability interfaces a script runtime must
// provide for variable inspection.  The core session logic is written
// against these interfaces and never imports a concrete runtime; adapters
// (see package luahost) implement them using whatever native debug or
// reflection facility the host language exposes.
package host

// Kind classifies a host value for display.  The formatter decorates
// values according to their kind and the walker uses KindCallable to
// exclude function-valued slots from enumeration.
type Kind int

const (
	// KindOther is any value without a more specific classification.
	KindOther Kind = iota

	// KindNil is the host's absent/nil value.
	KindNil

	// KindBool is a boolean value.
	KindBool

	// KindNumber is a numeric value.
	KindNumber

	// KindString is a string value.
	KindString

	// KindCallable is a function or other invocable value.
	KindCallable

	// KindComposite is a structured value (table, object, userdata) whose
	// rendering is delegated to the host's own display mechanism.
	KindComposite
)

var kindStrings = []string{
	KindOther:     "other",
	KindNil:       "nil",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindCallable:  "callable",
	KindComposite: "composite",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return "invalid"
	}
	return kindStrings[k]
}

// Value is an opaque host runtime value.  Only the adapter that produced
// a Value may interpret it.
type Value interface{}

// Frame is the metadata for one activation record on the host's call
// stack at a given level.
type Frame struct {
	// Level is the stack level the frame was observed at.  Level
	// numbering is defined by the host: level 0 is the function running
	// the inspection itself and larger levels are further up the stack.
	Level int

	// Name is the function name owning the frame, or "" when the host
	// cannot supply one.
	Name string
}

// Literal is a host-neutral constant parsed from prompt input.  Adapters
// convert literals to values with FromLiteral.  Only KindNil, KindBool,
// KindNumber and KindString occur in literals.
type Literal struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Runtime is the introspection facility a host adapter provides.  All
// methods are only meaningful while the script is suspended; nothing in
// this package is safe for use against a running script.
type Runtime interface {
	// Frame returns metadata for the stack frame at the given level.
	// ok is false when no frame exists at that level, which terminates a
	// stack walk.
	Frame(level int) (frame Frame, ok bool)

	// ReadLocal returns the name and value of the local variable in the
	// given slot of the frame at the given level.  Slots are 1-based and
	// enumerated in the host's declaration order.  ok is false when the
	// slot does not exist.
	ReadLocal(level, slot int) (name string, v Value, ok bool)

	// WriteLocal overwrites the local variable in the given slot of the
	// frame at the given level and returns the name the host acknowledges
	// for that slot.  ok is false when the write was rejected.
	WriteLocal(level, slot int, v Value) (name string, ok bool)

	// Classify reports the display kind of a value.
	Classify(v Value) Kind

	// Display renders a value using the host's general value-printing
	// mechanism.  For composite values this must honor any custom display
	// logic the value defines.
	Display(v Value) string

	// FromLiteral converts a parsed literal into a host value.
	FromLiteral(lit Literal) Value
}

// Evaluator is implemented by runtimes that can evaluate source text in
// the suspended context.  The interactive prompt hands unrecognized input
// to the evaluator, delegating read-eval-print behavior to the host.
type Evaluator interface {
	// EvalText evaluates src in the suspended script's state.  Output is
	// written to wherever the host normally writes; the returned error
	// describes compile or runtime failures.
	EvalText(src string) error
}
