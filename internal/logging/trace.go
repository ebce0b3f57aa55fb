// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// traceHandler adds the trace and span ids of the span
// found in the record context, if there is one.
type traceHandler struct {
	next slog.Handler
}

func newTraceHandler(h slog.Handler) *traceHandler {
	return &traceHandler{next: h}
}

// Enabled implements the slog.Handler interface.
func (h *traceHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *traceHandler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return h.next.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(
		slog.Group(
			"otel",
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		),
	)
	return h.next.Handle(ctx, r)
}

// WithAttrs implements the slog.Handler interface.
func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newTraceHandler(h.next.WithAttrs(attrs))
}

// WithGroup implements the slog.Handler interface.
func (h *traceHandler) WithGroup(name string) slog.Handler {
	return newTraceHandler(h.next.WithGroup(name))
}
