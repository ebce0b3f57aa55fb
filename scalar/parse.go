// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scalar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat means the raw text does not match the grammar of the target Kind.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOverflow means the raw text is numeric but out of range for the target Kind.
	ErrOverflow = errors.New("value out of range")
)

// ParseError records a failed conversion of raw text to a Kind.
type ParseError struct {
	Kind  Kind
	Input string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q as %s: %s", e.Input, e.Kind, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse converts raw to a Value of the given Kind.
func Parse(raw string, k Kind) (Value, error) {
	switch k {
	case Int32:
		n, err := parseInt(raw, 32)
		if err != nil {
			return Value{}, &ParseError{Kind: k, Input: raw, Cause: err}
		}
		return Of(int32(n)), nil
	case Int64:
		n, err := parseInt(raw, 64)
		if err != nil {
			return Value{}, &ParseError{Kind: k, Input: raw, Cause: err}
		}
		return Of(n), nil
	case Float64:
		f, err := parseFloat(raw)
		if err != nil {
			return Value{}, &ParseError{Kind: k, Input: raw, Cause: err}
		}
		return Of(f), nil
	case Bool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, &ParseError{Kind: k, Input: raw, Cause: err}
		}
		return Of(b), nil
	case Text:
		return Of(raw), nil
	default:
		return Value{}, &ParseError{Kind: k, Input: raw, Cause: UnknownKindError{Name: k.String()}}
	}
}

// ParseAs is the generic form of [Parse].
func ParseAs[T Type](raw string) (T, error) {
	var zero T
	v, err := Parse(raw, KindOf[T]())
	if err != nil {
		return zero, err
	}
	t, _ := As[T](v)
	return t, nil
}

func parseInt(raw string, bitSize int) (int64, error) {
	if !isDecimalInt(raw) {
		return 0, ErrInvalidFormat
	}
	n, err := strconv.ParseInt(raw, 10, bitSize)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOverflow
	}
	return 0, ErrInvalidFormat
}

func parseFloat(raw string) (float64, error) {
	if !isDecimalFloat(raw) {
		return 0, ErrInvalidFormat
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOverflow
	}
	return 0, ErrInvalidFormat
}

func parseBool(raw string) (bool, error) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	default:
		return false, ErrInvalidFormat
	}
}

// isDecimalInt matches [+-]?[0-9]+
func isDecimalInt(s string) bool {
	s = trimSign(s)
	return s != "" && skipDigits(s) == len(s)
}

// isDecimalFloat matches [+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?
func isDecimalFloat(s string) bool {
	s = trimSign(s)
	intDigits := skipDigits(s)
	s = s[intDigits:]

	fracDigits := 0
	if strings.HasPrefix(s, ".") {
		s = s[1:]
		fracDigits = skipDigits(s)
		s = s[fracDigits:]
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}
	if s == "" {
		return true
	}
	if s[0] != 'e' && s[0] != 'E' {
		return false
	}
	return isDecimalInt(s[1:])
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func skipDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
