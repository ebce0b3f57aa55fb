// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envcfg provides a typed configuration store built on top of environment variables.
//
// The set of expected variables is declared once, each one either with the
// [scalar.Kind] it must parse to or with a default value. The declarations are
// then resolved against the live environment and cached, so subsequent reads are
// served from already validated values instead of re-parsing the environment.
//
// # Declaring and resolving
//
//	store := envcfg.New()
//	err := store.Initialize(ctx, envcfg.Declarations{
//	    "PORT":      envcfg.Default[int32](8080),
//	    "LOG_LEVEL": envcfg.Default("info"),
//	    "DB_URL":    envcfg.Hint(scalar.Text),
//	})
//
// A live value always takes precedence. For a hinted declaration it must parse,
// otherwise Initialize fails and the store is left untouched. For a defaulted
// declaration an unparsable live value resolves to no value at all. An absent or
// empty live value resolves to the default, if there is one.
//
// # Reading values
//
// There are three ways of reading a resolved value:
//   - [Get] returns an error if the name was never declared, has no value or holds another kind.
//   - [GetOptional] collapses all of those failures into ok == false.
//   - [Resolve] bypasses the store entirely and defers the error until it is asked for.
//
// For example:
//
//	port, err := envcfg.Get[int32](store, "PORT")
//	url, ok := envcfg.GetOptional[string](store, "DB_URL")
//	timeout := envcfg.Resolve[int64]("TIMEOUT_MS").Or(5000)
//
// # Concurrency
//
// A Store has no internal locking. Readers may run concurrently with each other
// but never with Initialize.
package envcfg

// Version of the envcfg module.
const Version = "1.1.0"
