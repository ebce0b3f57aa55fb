// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import "github.com/z5labs/envcfg/scalar"

// Declaration states what is expected of a single environment variable.
// It is either a type hint, which requires the environment to supply the value,
// or a default value which is used when the environment does not.
type Declaration struct {
	kind scalar.Kind
	def  scalar.Value
}

// Hint declares a variable which must parse to the given Kind when present.
func Hint(kind scalar.Kind) Declaration {
	return Declaration{kind: kind}
}

// Default declares a variable with a fallback value. The Kind
// of the declaration is the kind of the fallback.
func Default[T scalar.Type](v T) Declaration {
	return DefaultValue(scalar.Of(v))
}

// DefaultValue is the untyped form of [Default].
func DefaultValue(v scalar.Value) Declaration {
	return Declaration{
		kind: v.Kind(),
		def:  v,
	}
}

// Kind returns the Kind a live value must parse to.
func (d Declaration) Kind() scalar.Kind {
	return d.kind
}

// Default returns the fallback value, if one was declared.
func (d Declaration) Default() (scalar.Value, bool) {
	return d.def, !d.def.IsZero()
}

// Declarations maps variable names to what is expected of them.
type Declarations map[string]Declaration
