// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scalar

import (
	"strconv"
)

// Value is a tagged union over the five supported scalar types.
// The zero Value holds nothing and reports [Invalid] as its Kind.
type Value struct {
	kind    Kind
	payload any
}

// Of wraps v into a Value whose Kind is derived from T.
func Of[T Type](v T) Value {
	return Value{
		kind:    KindOf[T](),
		payload: v,
	}
}

// As returns the payload of v if, and only if, v holds a value of type T.
func As[T Type](v Value) (T, bool) {
	t, ok := v.payload.(T)
	return t, ok
}

// Kind returns which scalar type v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool {
	return v.kind == Invalid
}

// Any returns the payload as an untyped value, or nil for the zero Value.
func (v Value) Any() any {
	return v.payload
}

// String returns the canonical text form of v. Formatting the payload
// and parsing the result with the same Kind yields an equal Value.
func (v Value) String() string {
	switch p := v.payload.(type) {
	case int32:
		return strconv.FormatInt(int64(p), 10)
	case int64:
		return strconv.FormatInt(p, 10)
	case float64:
		return strconv.FormatFloat(p, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(p)
	case string:
		return p
	default:
		return ""
	}
}
