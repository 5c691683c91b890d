// Copyright © 2026 The peek authors

package tracer

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/peeklua/peek/session"
)

var _ session.Tracer = &otelTracer{}

type otelTracer struct {
	tracer
	parentContext context.Context
	currentSpan   trace.Span
}

// NewOpenTelemetryTracer returns a tracer that opens an OpenTelemetry
// span per suspension cycle under the given parent context.
func NewOpenTelemetryTracer(parentContext context.Context, opts ...Option) *otelTracer {
	t := &otelTracer{parentContext: parentContext}
	t.applyConfigs(opts...)
	return t
}

// Enable starts recording.  The parent context must be set so new spans
// join the application's trace.
func (t *otelTracer) Enable() error {
	if t.parentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opentelemetry")
	}
	t.enabled = true
	return nil
}

// BeginCycle opens the suspension span.  The returned function ends it.
func (t *otelTracer) BeginCycle(info session.CycleInfo) func() {
	_, span := otel.GetTracerProvider().Tracer(t.name).Start(t.parentContext, spanName)
	span.SetAttributes(
		attribute.String("peek.trigger", info.Trigger),
		attribute.Int("peek.frames", info.Frames),
		attribute.Int("peek.variables", info.Variables),
	)
	t.currentSpan = span
	return func() {
		span.End()
		t.currentSpan = nil
	}
}

// RecordAccess adds an event to the current suspension span.
func (t *otelTracer) RecordAccess(op, display string, err error) {
	span := t.currentSpan
	if span == nil {
		return
	}
	span.AddEvent(op, trace.WithAttributes(
		attribute.String("peek.variable", display),
	))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
