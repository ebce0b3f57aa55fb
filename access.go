// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"iter"
	"maps"
	"slices"

	"github.com/z5labs/envcfg/scalar"
)

// Get returns the resolved value of name as a T.
//
// The returned error is an [*AccessError] wrapping [ErrNotFound] if name was
// never declared, [ErrNoValue] if it resolved to nothing and a [TypeMismatchError]
// if it resolved to another kind than T.
func Get[T scalar.Type](s *Store, name string) (T, error) {
	var zero T
	v, declared := s.values[name]
	if !declared {
		return zero, &AccessError{Name: name, Cause: ErrNotFound}
	}
	if v.IsZero() {
		return zero, &AccessError{Name: name, Cause: ErrNoValue}
	}
	t, ok := scalar.As[T](v)
	if !ok {
		return zero, &AccessError{
			Name: name,
			Cause: TypeMismatchError{
				Want: scalar.KindOf[T](),
				Got:  v.Kind(),
			},
		}
	}
	return t, nil
}

// GetOptional is like [Get] except every failure is reported as ok == false.
func GetOptional[T scalar.Type](s *Store, name string) (T, bool) {
	t, err := Get[T](s, name)
	return t, err == nil
}

// IsType reports whether name resolved to a value of type T.
func IsType[T scalar.Type](s *Store, name string) bool {
	v, ok := s.Lookup(name)
	return ok && v.Kind() == scalar.KindOf[T]()
}

// HasValue reports whether name was declared and resolved to a value of any kind.
func (s *Store) HasValue(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Lookup returns the resolved value of name without any type requirement.
func (s *Store) Lookup(name string) (scalar.Value, bool) {
	v := s.values[name]
	return v, !v.IsZero()
}

// Empty reports whether nothing has been declared to the Store yet.
func (s *Store) Empty() bool {
	return len(s.values) == 0
}

// Len returns the number of declared names.
func (s *Store) Len() int {
	return len(s.values)
}

// All returns a snapshot of the Store as (name, display text) pairs in the order
// names were first declared. The sequence can be ranged over any number of times
// and is unaffected by later calls to Initialize. A name without a value is
// displayed as "nullopt".
func (s *Store) All() iter.Seq2[string, string] {
	names := slices.Clone(s.names)
	values := maps.Clone(s.values)
	return func(yield func(string, string) bool) {
		for _, name := range names {
			if !yield(name, display(values[name])) {
				return
			}
		}
	}
}

func display(v scalar.Value) string {
	if v.IsZero() {
		return "nullopt"
	}
	return v.String()
}
