// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try converts panics raised while running a command into errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError wraps the value a recovered panic was raised with.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred. It joins any recovered panic into *err.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}
