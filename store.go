// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/internal/noop"
	"github.com/z5labs/envcfg/scalar"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/envcfg"

type options struct {
	src env.Reader
	lh  slog.Handler
}

// Option configures a Store.
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(o *options) {
	f(o)
}

// Source configures where live values are looked up. By default
// the environment of the current process is used.
func Source(r env.Reader) Option {
	return optionFunc(func(o *options) {
		o.src = r
	})
}

// LogHandler configures the slog.Handler used by the Store.
// By default nothing is logged.
func LogHandler(h slog.Handler) Option {
	return optionFunc(func(o *options) {
		o.lh = h
	})
}

// Store caches typed values resolved from the environment.
//
// Names are kept in the order they were first declared. The zero
// scalar.Value stands for a name which is declared but has no value.
type Store struct {
	src    env.Reader
	log    *slog.Logger
	tracer trace.Tracer

	names  []string
	values map[string]scalar.Value
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	o := &options{
		src: env.OS{},
		lh:  noop.LogHandler{},
	}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	return &Store{
		src:    o.src,
		log:    slog.New(o.lh),
		tracer: otel.Tracer(instrumentationName),
		values: make(map[string]scalar.Value),
	}
}

type resolved struct {
	name  string
	value scalar.Value
}

// Initialize resolves every declaration against the live environment and stores
// the results, replacing prior entries of the same names.
//
// Declarations are resolved in lexical order of their names. If any of them fails,
// the returned error is an [*InitializationError] for the first failing name and
// nothing from the batch is stored.
func (s *Store) Initialize(ctx context.Context, decls Declarations) (err error) {
	spanCtx, span := s.tracer.Start(ctx, "Store.Initialize", trace.WithAttributes(
		attribute.Int("envcfg.declarations", len(decls)),
	))
	defer span.End()
	defer func() {
		if err == nil {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}()

	names := slices.Sorted(maps.Keys(decls))
	staged := make([]resolved, 0, len(names))
	for _, name := range names {
		v, err := s.resolve(spanCtx, name, decls[name])
		if err != nil {
			return err
		}
		staged = append(staged, resolved{name: name, value: v})
	}

	for _, r := range staged {
		if _, exists := s.values[r.name]; !exists {
			s.names = append(s.names, r.name)
		}
		s.values[r.name] = r.value
	}
	return nil
}

func (s *Store) resolve(ctx context.Context, name string, d Declaration) (scalar.Value, error) {
	kind := d.Kind()
	if !kind.Valid() {
		return scalar.Value{}, &InitializationError{Name: name, Cause: ErrInvalidDeclaration}
	}
	def, hasDefault := d.Default()

	raw, _ := s.src.Lookup(name)
	if raw == "" {
		if !hasDefault {
			s.logResolved(ctx, name, kind, "unset", scalar.Value{})
			return scalar.Value{}, nil
		}
		s.logResolved(ctx, name, kind, "default", def)
		return def, nil
	}

	v, err := scalar.Parse(raw, kind)
	if err == nil {
		s.logResolved(ctx, name, kind, "env", v)
		return v, nil
	}
	if !hasDefault {
		return scalar.Value{}, &InitializationError{Name: name, Cause: err}
	}

	s.log.WarnContext(
		ctx,
		"ignoring unparsable environment value",
		slog.String("name", name),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	)
	return scalar.Value{}, nil
}

func (s *Store) logResolved(ctx context.Context, name string, kind scalar.Kind, source string, v scalar.Value) {
	s.log.DebugContext(
		ctx,
		"resolved environment variable",
		slog.String("name", name),
		slog.String("kind", kind.String()),
		slog.String("source", source),
		slog.String("value", display(v)),
	)
}
