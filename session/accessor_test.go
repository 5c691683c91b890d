// Copyright © 2026 The peek authors

package session_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peeklua/peek/hosttest"
	"github.com/peeklua/peek/session"
)

func newShadowedRuntime() *hosttest.Runtime {
	return hosttest.NewRuntime(
		hosttest.Frame{Name: "inner", Vars: []hosttest.Var{
			{Name: "myvar", Value: hosttest.Str("inside")},
		}},
		hosttest.Frame{Name: "outer", Vars: []hosttest.Var{
			{Name: "myvar", Value: hosttest.Str("outside")},
			{Name: "count", Value: hosttest.Num(3)},
		}},
	)
}

func TestGet(t *testing.T) {
	t.Parallel()
	s := session.Build(newShadowedRuntime())

	v, err := s.Get("myvar", 0)
	require.NoError(t, err)
	assert.Equal(t, `"inside"`, s.Format(v))

	v, err = s.Get("outer/myvar", 0)
	require.NoError(t, err)
	assert.Equal(t, `"outside"`, s.Format(v))
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()
	s := session.Build(newShadowedRuntime())

	v, err := s.Get("doesNotExist", 0)
	assert.Nil(t, v)
	var notFound *session.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "doesNotExist", notFound.Name)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	rt := newShadowedRuntime()
	s := session.Build(rt)

	for _, name := range s.Names() {
		before, err := s.Get(name, 0)
		require.NoError(t, err, "get %s", name)
		_, _, err = s.Set(name, before, 0)
		require.NoError(t, err, "set %s", name)
		after, err := s.Get(name, 0)
		require.NoError(t, err, "re-get %s", name)
		assert.Equal(t, s.Format(before), s.Format(after), "round trip changed %s", name)
	}
}

func TestSetReflectsImmediately(t *testing.T) {
	t.Parallel()
	rt := newShadowedRuntime()
	s := session.Build(rt)

	old, cur, err := s.Set("count", hosttest.Num(42), 0)
	require.NoError(t, err)
	assert.Equal(t, "(3)", s.Format(old))
	assert.Equal(t, "(42)", s.Format(cur))

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf, "count", 0))
	assert.Equal(t, "count = (42)\n", buf.String())
}

func TestAccessAfterFrameShift(t *testing.T) {
	t.Parallel()
	rt := newShadowedRuntime()
	s := session.Build(rt)

	// Two frames pushed after build time, as with an accessor reached
	// through an evaluated chunk.  Resolution must shift by the same
	// amount, and the unshifted path must be caught by the consistency
	// check instead of returning data from the wrong frame.
	rt.PushFrame(hosttest.Frame{Name: "chunk", Vars: []hosttest.Var{
		{Name: "tmp", Value: hosttest.Num(0)},
	}})
	rt.PushFrame(hosttest.Frame{Name: "accessor", Vars: []hosttest.Var{
		{Name: "arg", Value: hosttest.Str("myvar")},
	}})

	v, err := s.Get("myvar", 2)
	require.NoError(t, err)
	assert.Equal(t, `"inside"`, s.Format(v))

	_, err = s.Get("myvar", 0)
	var inconsistent *session.InconsistencyError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, "myvar", inconsistent.Expected)

	rt.PopFrame()
	rt.PopFrame()
	v, err = s.Get("myvar", 0)
	require.NoError(t, err)
	assert.Equal(t, `"inside"`, s.Format(v))
}

func TestSetRejectedWriteLeavesValueIntact(t *testing.T) {
	t.Parallel()
	rt := newShadowedRuntime()
	s := session.Build(rt)

	rt.RejectWrites = true
	_, _, err := s.Set("count", hosttest.Num(99), 0)
	var inconsistent *session.InconsistencyError
	require.ErrorAs(t, err, &inconsistent)

	rt.RejectWrites = false
	v, err := s.Get("count", 0)
	require.NoError(t, err)
	assert.Equal(t, "(3)", s.Format(v))
}

func TestSetMismatchedAckReported(t *testing.T) {
	t.Parallel()
	rt := newShadowedRuntime()
	rt.BadAck = "somethingElse"
	s := session.Build(rt)

	_, _, err := s.Set("count", hosttest.Num(99), 0)
	var inconsistent *session.InconsistencyError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, "count", inconsistent.Expected)
	assert.Equal(t, "somethingElse", inconsistent.Actual)
}

func TestPrintNotFound(t *testing.T) {
	t.Parallel()
	s := session.Build(newShadowedRuntime())

	var buf bytes.Buffer
	err := s.Print(&buf, "nope", 0)
	var notFound *session.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, buf.String())
}
