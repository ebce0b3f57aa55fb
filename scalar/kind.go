// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scalar

import (
	"fmt"
	"strings"
)

// Kind identifies which of the supported scalar types a [Value] holds.
type Kind int

const (
	// Invalid is the Kind of the zero Value.
	Invalid Kind = iota
	Int32
	Int64
	Float64
	Bool
	Text
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int32:   "int32",
	Int64:   "int64",
	Float64: "float64",
	Bool:    "bool",
	Text:    "text",
}

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the five supported kinds.
func (k Kind) Valid() bool {
	return k > Invalid && k <= Text
}

var kindAliases = map[string]Kind{
	"int32":   Int32,
	"int":     Int32,
	"int64":   Int64,
	"long":    Int64,
	"float64": Float64,
	"float":   Float64,
	"double":  Float64,
	"bool":    Bool,
	"boolean": Bool,
	"text":    Text,
	"string":  Text,
}

// UnknownKindError is returned by [ParseKind] when the given name
// does not refer to any supported Kind.
type UnknownKindError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown scalar kind: %q", e.Name)
}

// ParseKind maps a case-insensitive kind name, e.g. "int32" or "string", to its Kind.
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(name)]
	if !ok {
		return Invalid, UnknownKindError{Name: name}
	}
	return k, nil
}

// Type is the closed set of Go types a scalar Value can be extracted as.
type Type interface {
	int32 | int64 | float64 | bool | string
}

// KindOf returns the Kind corresponding to the Go type T.
func KindOf[T Type]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		return Text
	}
}
