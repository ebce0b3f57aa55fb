// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/z5labs/envcfg"
	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/scalar"

	"github.com/spf13/cobra"
)

// InvalidFlagError occurs when a flag value does not follow its expected syntax.
type InvalidFlagError struct {
	Flag  string
	Value string
	Cause error
}

// Error implements the error interface.
func (e InvalidFlagError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid --%s value: %q", e.Flag, e.Value)
	}
	return fmt.Sprintf("invalid --%s value: %q: %s", e.Flag, e.Value, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidFlagError) Unwrap() error {
	return e.Cause
}

// WriteFailedError occurs when one of the --try-set writes is rejected.
type WriteFailedError struct {
	Name string
}

// Error implements the error interface.
func (e WriteFailedError) Error() string {
	return fmt.Sprintf("failed to set %s", e.Name)
}

type printFlags struct {
	sets        []string
	trySets     []string
	noOverwrite bool
	decls       []string
	defaults    []string
}

func (a *app) printCommand() *cobra.Command {
	var pf printFlags

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Resolve the declared variables and print them",
		Example: `  envcfg print --set TEST_ENV2=321 --decl TEST_ENV1=text --decl TEST_ENV2=int32 \
    --default TEST_ENV3=bool:false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, pf)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&pf.sets, "set", nil, "set NAME=VALUE before resolving, failing on invalid names")
	flags.StringArrayVar(&pf.trySets, "try-set", nil, "set NAME=VALUE before resolving without validating NAME")
	flags.BoolVar(&pf.noOverwrite, "no-overwrite", false, "keep variables which already have a value")
	flags.StringArrayVar(&pf.decls, "decl", nil, "declare NAME=KIND, a variable without a default")
	flags.StringArrayVar(&pf.defaults, "default", nil, "declare NAME=KIND:VALUE, a variable with a default")
	return cmd
}

func (a *app) print(cmd *cobra.Command, pf printFlags) error {
	overwrite := !pf.noOverwrite
	for _, s := range pf.sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return InvalidFlagError{Flag: "set", Value: s}
		}
		err := env.Set(a.env, name, value, overwrite)
		if err != nil {
			return err
		}
	}
	for _, s := range pf.trySets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return InvalidFlagError{Flag: "try-set", Value: s}
		}
		if !env.TrySet(a.env, name, value, overwrite) {
			return WriteFailedError{Name: name}
		}
	}

	decls, err := parseDeclarations(pf.decls, pf.defaults)
	if err != nil {
		return err
	}

	store := envcfg.New(
		envcfg.Source(a.env),
		envcfg.LogHandler(a.logHandler),
	)
	err = store.Initialize(cmd.Context(), decls)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for name, value := range store.All() {
		_, err := fmt.Fprintf(out, "%s = %s\n", name, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func parseDeclarations(hints, defaults []string) (envcfg.Declarations, error) {
	decls := make(envcfg.Declarations, len(hints)+len(defaults))
	for _, h := range hints {
		name, kindName, ok := strings.Cut(h, "=")
		if !ok || name == "" {
			return nil, InvalidFlagError{Flag: "decl", Value: h}
		}
		kind, err := scalar.ParseKind(kindName)
		if err != nil {
			return nil, InvalidFlagError{Flag: "decl", Value: h, Cause: err}
		}
		decls[name] = envcfg.Hint(kind)
	}
	for _, d := range defaults {
		name, rest, ok := strings.Cut(d, "=")
		if !ok || name == "" {
			return nil, InvalidFlagError{Flag: "default", Value: d}
		}
		kindName, raw, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, InvalidFlagError{Flag: "default", Value: d}
		}
		kind, err := scalar.ParseKind(kindName)
		if err != nil {
			return nil, InvalidFlagError{Flag: "default", Value: d, Cause: err}
		}
		v, err := scalar.Parse(raw, kind)
		if err != nil {
			return nil, InvalidFlagError{Flag: "default", Value: d, Cause: err}
		}
		decls[name] = envcfg.DefaultValue(v)
	}
	return decls, nil
}
