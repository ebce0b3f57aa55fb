// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"errors"
	"fmt"

	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/scalar"
)

var (
	// ErrNotFound means the name was never declared to the Store.
	ErrNotFound = errors.New("not declared")

	// ErrNoValue means the name was declared but resolved to no value.
	ErrNoValue = errors.New("no value")

	// ErrTypeMismatch is matched by every [TypeMismatchError].
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInitializationFailed is matched by every [InitializationError].
	ErrInitializationFailed = errors.New("initialization failed")

	// ErrInvalidDeclaration means a Declaration names no supported kind,
	// e.g. the zero Declaration.
	ErrInvalidDeclaration = errors.New("invalid declaration")

	// ErrInvalidName is returned by [Set] for empty names and names containing "=".
	ErrInvalidName = env.ErrInvalidName

	// ErrWriteFailed is returned by [Set] when the environment rejects the write.
	ErrWriteFailed = env.ErrWriteFailed
)

// AccessError is returned when a value can not be read.
type AccessError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to get %s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *AccessError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError occurs when a resolved value is requested as another kind.
type TypeMismatchError struct {
	Want scalar.Kind
	Got  scalar.Kind
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("requested %s but resolved %s", e.Want, e.Got)
}

// Is allows errors.Is(err, ErrTypeMismatch) to match any TypeMismatchError.
func (e TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// InitializationError occurs when the live value of a hinted
// declaration fails to parse.
type InitializationError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %s", e.Name, e.Cause)
}

// Is allows errors.Is(err, ErrInitializationFailed) to match any InitializationError.
func (e *InitializationError) Is(target error) bool {
	return target == ErrInitializationFailed
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *InitializationError) Unwrap() error {
	return e.Cause
}
