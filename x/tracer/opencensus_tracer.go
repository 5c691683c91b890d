// Copyright © 2026 The peek authors

package tracer

import (
	"context"
	"errors"

	octrace "go.opencensus.io/trace"

	"github.com/peeklua/peek/session"
)

var _ session.Tracer = &ocTracer{}

type ocTracer struct {
	tracer
	parentContext context.Context
	currentSpan   *octrace.Span
}

// NewOpenCensusTracer returns a tracer that opens an OpenCensus span per
// suspension cycle under the given parent context.
func NewOpenCensusTracer(parentContext context.Context, opts ...Option) *ocTracer {
	t := &ocTracer{parentContext: parentContext}
	t.applyConfigs(opts...)
	return t
}

// Enable starts recording.
func (t *ocTracer) Enable() error {
	if t.parentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	t.enabled = true
	return nil
}

// BeginCycle opens the suspension span.  The returned function ends it.
func (t *ocTracer) BeginCycle(info session.CycleInfo) func() {
	_, span := octrace.StartSpan(t.parentContext, spanName)
	span.AddAttributes(
		octrace.StringAttribute("peek.trigger", info.Trigger),
		octrace.Int64Attribute("peek.frames", int64(info.Frames)),
		octrace.Int64Attribute("peek.variables", int64(info.Variables)),
	)
	t.currentSpan = span
	return func() {
		span.End()
		t.currentSpan = nil
	}
}

// RecordAccess annotates the current suspension span.
func (t *ocTracer) RecordAccess(op, display string, err error) {
	span := t.currentSpan
	if span == nil {
		return
	}
	attrs := []octrace.Attribute{
		octrace.StringAttribute("peek.variable", display),
	}
	if err != nil {
		attrs = append(attrs, octrace.StringAttribute("peek.error", err.Error()))
	}
	span.Annotate(attrs, op)
}
