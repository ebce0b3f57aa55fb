// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package env abstracts the live environment variable table that values are
// resolved from and written to.
//
// The process environment is shared, mutable state with no isolation. A write
// from any goroutine is visible to every subsequent read in the process and
// concurrent reads and writes of the same name race exactly as the platform allows.
package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Reader looks up the live value of an environment variable.
// Implementations must be free of side effects.
type Reader interface {
	Lookup(name string) (string, bool)
}

// Writer sets the live value of an environment variable. When overwrite is false
// and name already has a value, the value must be left unchanged and no error reported.
type Writer interface {
	Setenv(name, value string, overwrite bool) error
}

// ReadWriter groups the Reader and Writer interfaces.
type ReadWriter interface {
	Reader
	Writer
}

// OS is a ReadWriter backed by the environment of the current process.
type OS struct{}

// Lookup implements the Reader interface.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Setenv implements the Writer interface.
func (OS) Setenv(name, value string, overwrite bool) error {
	if !overwrite {
		if _, exists := os.LookupEnv(name); exists {
			return nil
		}
	}
	return os.Setenv(name, value)
}

// Map is an in-memory ReadWriter.
type Map map[string]string

// FromEnviron builds a Map from "KEY=VALUE" pairs, e.g. the output of [os.Environ].
// Pairs without a "=" are skipped.
func FromEnviron(environ []string) Map {
	m := make(Map, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}

// Lookup implements the Reader interface.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Setenv implements the Writer interface.
func (m Map) Setenv(name, value string, overwrite bool) error {
	if _, exists := m[name]; exists && !overwrite {
		return nil
	}
	m[name] = value
	return nil
}

var (
	// ErrInvalidName is returned by [Set] for empty names and names containing "=".
	ErrInvalidName = errors.New("invalid environment variable name")

	// ErrWriteFailed is matched by every [WriteError].
	ErrWriteFailed = errors.New("failed to write environment variable")
)

// InvalidNameError is returned by [Set] when the name can never be a valid variable name.
type InvalidNameError struct {
	Name string
}

// Error implements the error interface.
func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid environment variable name: %q", e.Name)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// WriteError wraps a failure reported by the underlying Writer.
type WriteError struct {
	Name  string
	Value string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to set %s to %q: %s", e.Name, e.Value, e.Cause)
}

// Is allows errors.Is(err, ErrWriteFailed) to match any WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// ValidName reports whether name is non-empty and free of "=".
func ValidName(name string) bool {
	return name != "" && !strings.Contains(name, "=")
}

// Set validates name and then writes value through w.
func Set(w Writer, name, value string, overwrite bool) error {
	if !ValidName(name) {
		return InvalidNameError{Name: name}
	}
	err := w.Setenv(name, value, overwrite)
	if err != nil {
		return &WriteError{Name: name, Value: value, Cause: err}
	}
	return nil
}

// TrySet writes value through w without validating name first.
// It reports whether the write succeeded.
func TrySet(w Writer, name, value string, overwrite bool) bool {
	return w.Setenv(name, value, overwrite) == nil
}
