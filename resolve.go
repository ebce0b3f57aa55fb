// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/scalar"
)

// Result holds either a value resolved directly from the environment
// or the error which prevented it from being resolved.
type Result[T scalar.Type] struct {
	value T
	err   error
}

// Resolve reads and parses name from the process environment, bypassing any Store.
func Resolve[T scalar.Type](name string) Result[T] {
	return ResolveFrom[T](env.OS{}, name)
}

// ResolveFrom is like [Resolve] but reads from the given env.Reader.
func ResolveFrom[T scalar.Type](r env.Reader, name string) Result[T] {
	raw, _ := r.Lookup(name)
	if raw == "" {
		return Result[T]{err: &AccessError{Name: name, Cause: ErrNoValue}}
	}
	t, err := scalar.ParseAs[T](raw)
	if err != nil {
		return Result[T]{err: &AccessError{Name: name, Cause: err}}
	}
	return Result[T]{value: t}
}

// Value returns the resolved value or the error captured while resolving it.
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Err returns the error captured while resolving, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Or returns the resolved value, or fallback if it could not be resolved
// for any reason.
func (r Result[T]) Or(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Must returns the resolved value and panics with the captured error otherwise.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}
