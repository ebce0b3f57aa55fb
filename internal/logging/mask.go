// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package logging

import (
	"context"
	"log/slog"
)

type maskHandler struct {
	next slog.Handler
	keys map[string]struct{}
}

func newMaskHandler(h slog.Handler, keys ...string) *maskHandler {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return &maskHandler{next: h, keys: m}
}

func (h *maskHandler) mask(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		masked := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			masked[i] = h.mask(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}
	if _, ok := h.keys[a.Key]; ok {
		return slog.String(a.Key, Masked)
	}
	return a
}

// Enabled implements the slog.Handler interface.
func (h *maskHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *maskHandler) Handle(ctx context.Context, record slog.Record) error {
	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		r.AddAttrs(h.mask(a))
		return true
	})
	return h.next.Handle(ctx, r)
}

// WithAttrs implements the slog.Handler interface.
func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return &maskHandler{next: h.next.WithAttrs(masked), keys: h.keys}
}

// WithGroup implements the slog.Handler interface.
func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{next: h.next.WithGroup(name), keys: h.keys}
}
