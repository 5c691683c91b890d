// Copyright © 2026 The peek authors

package tracer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	octrace "go.opencensus.io/trace"

	"github.com/peeklua/peek/session"
	"github.com/peeklua/peek/x/tracer"
)

// collectExporter gathers exported spans for assertions.
type collectExporter struct {
	mu    sync.Mutex
	spans []*octrace.SpanData
}

func (e *collectExporter) ExportSpan(sd *octrace.SpanData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, sd)
}

func (e *collectExporter) get() []*octrace.SpanData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spans
}

func TestNewOpenCensusTracer(t *testing.T) {
	// Sample at 100% for the purposes of this test.
	octrace.ApplyConfig(octrace.Config{DefaultSampler: octrace.AlwaysSample()})
	exporter := new(collectExporter)
	octrace.RegisterExporter(exporter)
	t.Cleanup(func() { octrace.UnregisterExporter(exporter) })

	tr := tracer.NewOpenCensusTracer(context.Background())
	require.NoError(t, tr.Enable())

	sess := session.Build(newTracedRuntime(), session.WithTracer(tr))
	end := sess.BeginCycle("poll")
	_, err := sess.Get("count", 0)
	require.NoError(t, err)
	end()

	spans := exporter.get()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "suspension", span.Name)
	assert.Equal(t, "poll", span.Attributes["peek.trigger"])
	assert.Equal(t, int64(1), span.Attributes["peek.frames"])
	require.Len(t, span.Annotations, 1)
	assert.Equal(t, "get", span.Annotations[0].Message)
}

func TestOpenCensusTracerRequiresContext(t *testing.T) {
	//nolint:staticcheck // a nil parent is exactly the misuse under test
	tr := tracer.NewOpenCensusTracer(nil)
	assert.Error(t, tr.Enable())
}
