// Copyright © 2026 The peek authors

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peeklua/peek/session"
)

type recordingTracer struct {
	enabled  bool
	cycles   []session.CycleInfo
	ended    int
	accesses []string
}

func (t *recordingTracer) IsEnabled() bool { return t.enabled }

func (t *recordingTracer) BeginCycle(info session.CycleInfo) func() {
	t.cycles = append(t.cycles, info)
	return func() { t.ended++ }
}

func (t *recordingTracer) RecordAccess(op, display string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "err"
	}
	t.accesses = append(t.accesses, op+" "+display+" "+outcome)
}

func TestTracerCycle(t *testing.T) {
	t.Parallel()
	tr := &recordingTracer{enabled: true}
	s := session.Build(newShadowedRuntime(), session.WithTracer(tr))

	end := s.BeginCycle("call")
	_, err := s.Get("count", 0)
	require.NoError(t, err)
	_, _ = s.Get("nope", 0)
	end()

	require.Len(t, tr.cycles, 1)
	assert.Equal(t, "call", tr.cycles[0].Trigger)
	assert.Equal(t, 2, tr.cycles[0].Frames)
	assert.Equal(t, 3, tr.cycles[0].Variables)
	assert.Equal(t, 1, tr.ended)
	assert.Equal(t, []string{"get count ok", "get nope err"}, tr.accesses)
}

func TestDormantTracerIsSkipped(t *testing.T) {
	t.Parallel()
	tr := &recordingTracer{enabled: false}
	s := session.Build(newShadowedRuntime(), session.WithTracer(tr))

	end := s.BeginCycle("call")
	end()
	_, _ = s.Get("count", 0)

	assert.Empty(t, tr.cycles)
	assert.Empty(t, tr.accesses)
}
