// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package scalar implements the closed set of typed values an environment
// variable can be resolved to, along with the parsing rules for each of them.
//
// # Kinds
//
// There are exactly five kinds of scalar values:
//   - Int32, a 32-bit signed integer
//   - Int64, a 64-bit signed integer
//   - Float64, a double precision floating point number
//   - Bool, either true or false
//   - Text, an arbitrary string
//
// A [Value] always carries exactly one payload whose kind never changes once
// constructed. Extracting a payload with [As] requires an exact kind match,
// an Int32 value is never handed out as an Int64 or vice versa.
//
// # Parsing
//
// [Parse] converts raw text to a [Value] of the requested [Kind]. Parsing is
// ASCII only and locale independent:
//
//	v, err := scalar.Parse("8080", scalar.Int32)
//	if errors.Is(err, scalar.ErrOverflow) {
//	    // numeric, but does not fit into an int32
//	}
//
// Booleans only accept the literals "true" and "false", compared case-insensitively.
package scalar
