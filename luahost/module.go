// Copyright © 2026 The peek authors

package luahost

import (
	"fmt"
	"io"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/peeklua/peek/prompt"
	"github.com/peeklua/peek/session"
	"github.com/peeklua/peek/trigger"
)

// scriptShift is the number of frames between the stack shape recorded
// when the suspension began and the stack seen by an accessor builtin
// invoked from evaluated prompt input: one frame for the evaluated chunk
// and one for the accessor builtin itself.
const scriptShift = 2

// Module exposes the inspection shim to Lua scripts as the "peek"
// module.  A script calls peek.pause() to suspend unconditionally or
// peek.poll() to suspend when the marker file exists; while suspended,
// evaluated input may call peek.get, peek.set, peek.print and peek.vars
// against the live directory.
type Module struct {
	name     string
	out      io.Writer
	tracer   session.Tracer
	trig     *trigger.Trigger
	interact func(*session.Session)

	// cur is the session for the suspension in progress, nil otherwise.
	// Scripts are single-threaded so no locking is needed.
	cur *session.Session
}

// ModOption configures a Module.
type ModOption func(*Module)

// WithName changes the name the module registers under.  The default is
// "peek"; scripts that already use the name can load the shim under
// another one.
func WithName(name string) ModOption {
	return func(m *Module) { m.name = name }
}

// WithOutput sets where listings and prompt output are written.  The
// default is stderr, keeping the script's own stdout clean.
func WithOutput(w io.Writer) ModOption {
	return func(m *Module) { m.out = w }
}

// WithTracer attaches a suspension-cycle tracer to every session the
// module builds.
func WithTracer(t session.Tracer) ModOption {
	return func(m *Module) { m.tracer = t }
}

// WithTrigger sets the marker trigger consulted by peek.poll.
func WithTrigger(t *trigger.Trigger) ModOption {
	return func(m *Module) { m.trig = t }
}

// WithInteract replaces the interactive prompt with a custom handler.
// The handler runs while the script is suspended and the script resumes
// when it returns.  Tests use this to drive a suspension without a
// terminal.
func WithInteract(fn func(*session.Session)) ModOption {
	return func(m *Module) { m.interact = fn }
}

// NewModule returns a module ready to register with an interpreter.
func NewModule(opts ...ModOption) *Module {
	m := &Module{name: "peek", out: os.Stderr}
	for _, opt := range opts {
		opt(m)
	}
	if m.interact == nil {
		m.interact = func(sess *session.Session) {
			prompt.Run(sess, prompt.WithOutput(m.out))
		}
	}
	return m
}

// Preload registers the module with the interpreter's package system so
// scripts can require("peek").
func (m *Module) Preload(l *lua.LState) {
	l.PreloadModule(m.name, m.Loader)
}

// Install binds the module to its global name without requiring an
// explicit require call.
func (m *Module) Install(l *lua.LState) {
	l.SetGlobal(m.name, l.SetFuncs(l.NewTable(), m.exports()))
}

// Loader is a lua module loader for use with PreloadModule.
func (m *Module) Loader(l *lua.LState) int {
	l.Push(l.SetFuncs(l.NewTable(), m.exports()))
	return 1
}

func (m *Module) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"pause": m.luaPause,
		"poll":  m.luaPoll,
		"get":   m.luaGet,
		"set":   m.luaSet,
		"print": m.luaPrint,
		"vars":  m.luaVars,
	}
}

// suspend builds a session for the stopped script, prints the listing,
// and hands control to the interactive handler until it returns.
func (m *Module) suspend(l *lua.LState, why string, offset int) {
	opts := []session.Option{session.WithOffset(offset)}
	if m.tracer != nil {
		opts = append(opts, session.WithTracer(m.tracer))
	}
	sess := session.Build(New(l), opts...)
	end := sess.BeginCycle(why)
	defer end()
	fmt.Fprint(m.out, sess.Listing()) //nolint:errcheck
	m.cur = sess
	defer func() { m.cur = nil }()
	m.interact(sess)
}

// luaPause suspends unconditionally.  An optional integer argument skips
// that many additional script frames, for scripts that reach the pause
// through a wrapper function.
func (m *Module) luaPause(l *lua.LState) int {
	m.suspend(l, "call", l.OptInt(1, 0))
	return 0
}

// luaPoll suspends only when the marker trigger fires.  An optional
// string argument names a marker path, overriding the module's
// configured trigger; an optional trailing integer is a frame offset.
// It returns true when a suspension happened.
func (m *Module) luaPoll(l *lua.LState) int {
	trig := m.trig
	arg := 1
	if l.Get(1).Type() == lua.LTString {
		trig = trigger.New(l.CheckString(1))
		arg = 2
	}
	offset := l.OptInt(arg, 0)
	if trig == nil || !trig.Check() {
		l.Push(lua.LFalse)
		return 1
	}
	m.suspend(l, "poll", offset)
	l.Push(lua.LTrue)
	return 1
}

// luaGet returns the value of a directory entry by display name, or nil
// after reporting the failure.
func (m *Module) luaGet(l *lua.LState) int {
	name := l.CheckString(1)
	sess := m.cur
	if sess == nil {
		l.RaiseError("peek.get: no suspension in progress")
		return 0
	}
	v, err := sess.Get(name, scriptShift)
	if err != nil {
		fmt.Fprintln(m.out, err) //nolint:errcheck
		l.Push(lua.LNil)
		return 1
	}
	l.Push(toLua(v))
	return 1
}

// luaSet overwrites a directory entry by display name and returns the
// previous value.
func (m *Module) luaSet(l *lua.LState) int {
	name := l.CheckString(1)
	v := l.Get(2)
	sess := m.cur
	if sess == nil {
		l.RaiseError("peek.set: no suspension in progress")
		return 0
	}
	old, _, err := sess.Set(name, v, scriptShift)
	if err != nil {
		fmt.Fprintln(m.out, err) //nolint:errcheck
		l.Push(lua.LNil)
		return 1
	}
	l.Push(toLua(old))
	return 1
}

// luaPrint writes "name = value" for a directory entry.
func (m *Module) luaPrint(l *lua.LState) int {
	name := l.CheckString(1)
	sess := m.cur
	if sess == nil {
		l.RaiseError("peek.print: no suspension in progress")
		return 0
	}
	if err := sess.Print(m.out, name, scriptShift); err != nil {
		fmt.Fprintln(m.out, err) //nolint:errcheck
	}
	return 0
}

// luaVars reprints the suspension's variable listing.
func (m *Module) luaVars(l *lua.LState) int {
	sess := m.cur
	if sess == nil {
		l.RaiseError("peek.vars: no suspension in progress")
		return 0
	}
	fmt.Fprint(m.out, sess.Listing()) //nolint:errcheck
	return 0
}
