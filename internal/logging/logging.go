// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package logging builds the slog.Handler used by the envcfg command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Masked replaces the value of every masked attribute.
const Masked = "****"

// Options configure the handler returned by NewHandler.
type Options struct {
	// Level is the minimum level which is logged.
	Level slog.Level

	// Format is either "json" or "text".
	Format string

	// MaskKeys lists attribute keys whose values must never be written.
	MaskKeys []string
}

// UnsupportedFormatError occurs when Options.Format is neither "json" nor "text".
type UnsupportedFormatError struct {
	Format string
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported log format: %q", e.Format)
}

// NewHandler returns a slog.Handler writing to w which masks the configured
// attribute keys and correlates records with the active trace span, if any.
func NewHandler(w io.Writer, opts Options) (slog.Handler, error) {
	ho := &slog.HandlerOptions{Level: opts.Level}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "json":
		h = slog.NewJSONHandler(w, ho)
	case "text":
		h = slog.NewTextHandler(w, ho)
	default:
		return nil, UnsupportedFormatError{Format: opts.Format}
	}

	if len(opts.MaskKeys) > 0 {
		h = newMaskHandler(h, opts.MaskKeys...)
	}
	return newTraceHandler(h), nil
}

// ParseLevel maps names like "debug" or "WARN" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}
