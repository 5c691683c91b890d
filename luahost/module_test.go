// Copyright © 2026 The peek authors

package luahost

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/peeklua/peek/host"
	"github.com/peeklua/peek/hosttest"
	"github.com/peeklua/peek/session"
	"github.com/peeklua/peek/trigger"
)

// runScript installs a module whose suspensions are handled by interact
// instead of a terminal prompt, runs src, and returns the module output.
// Output is also mirrored to the test log for failure diagnosis.
func runScript(t *testing.T, src string, interact func(*session.Session), opts ...ModOption) string {
	t.Helper()
	l := lua.NewState()
	defer l.Close()
	var out bytes.Buffer
	logw := hosttest.NewLogWriter(t)
	defer logw.Flush()
	opts = append([]ModOption{WithOutput(io.MultiWriter(&out, logw)), WithInteract(interact)}, opts...)
	NewModule(opts...).Install(l)
	require.NoError(t, l.DoString(src))
	return out.String()
}

func TestPauseBuildsDirectory(t *testing.T) {
	t.Parallel()
	var names []string
	out := runScript(t, `
		local function inner()
			local myvar = "inside"
			peek.pause()
		end
		local myvar = "outside"
		local count = 3
		inner()
	`, func(s *session.Session) {
		names = s.Names()
	})

	// Plain "myvar" belongs to the innermost frame; the shadowed outer
	// variable appears under a frame-qualified display name.
	assert.Contains(t, names, "myvar")
	assert.Contains(t, names, "count")
	var qualified int
	for _, n := range names {
		if strings.HasSuffix(n, "/myvar") {
			qualified++
		}
	}
	assert.Equal(t, 1, qualified, "names: %v", names)

	assert.True(t, strings.HasPrefix(out, session.ListingHeader))
	assert.True(t, strings.HasSuffix(out, session.ListingBanner))
	assert.Contains(t, out, "myvar")
}

func TestGetWhileSuspended(t *testing.T) {
	t.Parallel()
	runScript(t, `
		local greeting = "hello"
		peek.pause()
	`, func(s *session.Session) {
		v, err := s.Get("greeting", 0)
		require.NoError(t, err)
		assert.Equal(t, `"hello"`, s.Format(v))
	})
}

func TestSetVisibleAfterResume(t *testing.T) {
	t.Parallel()
	runScript(t, `
		local count = 3
		peek.pause()
		if count ~= 42 then error("count not updated: " .. tostring(count)) end
	`, func(s *session.Session) {
		_, _, err := s.Set("count", lua.LNumber(42), 0)
		require.NoError(t, err)
	})
}

func TestFunctionsExcludedFromListing(t *testing.T) {
	t.Parallel()
	runScript(t, `
		local helper = function() end
		local kept = 1
		peek.pause()
	`, func(s *session.Session) {
		assert.NotContains(t, s.Names(), "helper")
		assert.Contains(t, s.Names(), "kept")
	})
}

func TestPauseOffsetSkipsWrapper(t *testing.T) {
	t.Parallel()
	runScript(t, `
		local function breakpoint()
			local wrapperLocal = "hidden"
			peek.pause(1)
		end
		local visible = "shown"
		breakpoint()
	`, func(s *session.Session) {
		assert.NotContains(t, s.Names(), "wrapperLocal")
		assert.Contains(t, s.Names(), "visible")
	})
}

// Evaluated input reaches the accessors through two extra frames (the
// chunk and the accessor builtin); the set must still land on the
// variable recorded at build time.
func TestScriptSideAccessors(t *testing.T) {
	t.Parallel()
	out := runScript(t, `
		local myvar = "before"
		peek.pause()
		if myvar ~= "after" then error("set did not stick: " .. tostring(myvar)) end
	`, func(s *session.Session) {
		ev, ok := s.Runtime().(host.Evaluator)
		require.True(t, ok)
		require.NoError(t, ev.EvalText(`peek.print("myvar")`))
		require.NoError(t, ev.EvalText(`peek.set("myvar", "after")`))
		require.NoError(t, ev.EvalText(`peek.print("myvar")`))
	})
	assert.Contains(t, out, "myvar = \"before\"\n")
	assert.Contains(t, out, "myvar = \"after\"\n")
}

func TestScriptSideGetReturnsValue(t *testing.T) {
	t.Parallel()
	runScript(t, `
		local answer = 42
		peek.pause()
		if fetched ~= 42 then error("get returned " .. tostring(fetched)) end
	`, func(s *session.Session) {
		ev := s.Runtime().(host.Evaluator)
		require.NoError(t, ev.EvalText(`fetched = peek.get("answer")`))
	})
}

func TestGetUnknownNameReportsAndReturnsNil(t *testing.T) {
	t.Parallel()
	out := runScript(t, `
		local x = 1
		peek.pause()
	`, func(s *session.Session) {
		ev := s.Runtime().(host.Evaluator)
		require.NoError(t, ev.EvalText(`missing = peek.get("nope")`))
		require.NoError(t, ev.EvalText(`if missing ~= nil then error("expected nil") end`))
	})
	assert.Contains(t, out, `no variable named "nope"`)
}

func TestPollWithoutMarker(t *testing.T) {
	t.Parallel()
	marker := filepath.Join(t.TempDir(), "peek-now")
	suspended := false
	runScript(t, `
		if peek.poll() then error("poll fired with no marker") end
	`, func(*session.Session) {
		suspended = true
	}, WithTrigger(trigger.New(marker)))
	assert.False(t, suspended)
}

func TestPollConsumesMarker(t *testing.T) {
	t.Parallel()
	marker := filepath.Join(t.TempDir(), "peek-now")
	require.NoError(t, os.WriteFile(marker, nil, 0600))

	count := 0
	runScript(t, `
		if not peek.poll() then error("poll missed the marker") end
		if peek.poll() then error("marker not consumed") end
	`, func(*session.Session) {
		count++
	}, WithTrigger(trigger.New(marker)))
	assert.Equal(t, 1, count)

	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err))
}

func TestPollExplicitMarkerArgument(t *testing.T) {
	t.Parallel()
	marker := filepath.Join(t.TempDir(), "peek-now")
	require.NoError(t, os.WriteFile(marker, nil, 0600))

	suspended := false
	runScript(t, `
		if not peek.poll("`+marker+`") then error("poll missed the marker") end
	`, func(*session.Session) {
		suspended = true
	})
	assert.True(t, suspended)
}

func TestPreload(t *testing.T) {
	t.Parallel()
	l := lua.NewState()
	defer l.Close()
	var out bytes.Buffer
	suspended := false
	m := NewModule(WithOutput(&out), WithInteract(func(*session.Session) { suspended = true }))
	m.Preload(l)
	require.NoError(t, l.DoString(`
		local peek = require("peek")
		local x = 1
		peek.pause()
	`))
	assert.True(t, suspended)
}

// Embedders that replace the prompt reach the interpreter through the
// session's runtime, e.g. to evaluate with the state directly.
func TestRuntimeStateAccess(t *testing.T) {
	t.Parallel()
	l := lua.NewState()
	defer l.Close()
	var got *lua.LState
	m := NewModule(WithOutput(io.Discard), WithInteract(func(s *session.Session) {
		rt, ok := s.Runtime().(*Runtime)
		require.True(t, ok)
		got = rt.State()
	}))
	m.Install(l)
	require.NoError(t, l.DoString(`
		local x = 1
		peek.pause()
	`))
	assert.Same(t, l, got)
}

func TestInstallUnderAlternateName(t *testing.T) {
	t.Parallel()
	l := lua.NewState()
	defer l.Close()
	suspended := false
	m := NewModule(WithName("inspect"), WithOutput(&bytes.Buffer{}),
		WithInteract(func(*session.Session) { suspended = true }))
	m.Install(l)
	require.NoError(t, l.DoString(`
		local x = 1
		inspect.pause()
	`))
	assert.True(t, suspended)
}

func TestAccessorsOutsideSuspensionRaise(t *testing.T) {
	t.Parallel()
	l := lua.NewState()
	defer l.Close()
	NewModule(WithOutput(&bytes.Buffer{})).Install(l)
	err := l.DoString(`peek.get("x")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suspension in progress")
}
