// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/z5labs/envcfg"
	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/scalar"

	"github.com/spf13/cobra"
)

func (a *app) getCommand() *cobra.Command {
	var (
		kindName string
		fallback string
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Resolve a single variable directly from the environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := scalar.ParseKind(kindName)
			if err != nil {
				return InvalidFlagError{Flag: "kind", Value: kindName, Cause: err}
			}

			var fb *string
			if cmd.Flags().Changed("or") {
				fb = &fallback
			}

			v, err := resolve(a.env, args[0], kind, fb)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kindName, "kind", "text", "kind the value must parse to")
	flags.StringVar(&fallback, "or", "", "value printed when the variable is missing or invalid")
	return cmd
}

func resolve(r env.Reader, name string, kind scalar.Kind, fallback *string) (scalar.Value, error) {
	switch kind {
	case scalar.Int32:
		return resolveAs[int32](r, name, fallback)
	case scalar.Int64:
		return resolveAs[int64](r, name, fallback)
	case scalar.Float64:
		return resolveAs[float64](r, name, fallback)
	case scalar.Bool:
		return resolveAs[bool](r, name, fallback)
	default:
		return resolveAs[string](r, name, fallback)
	}
}

func resolveAs[T scalar.Type](r env.Reader, name string, fallback *string) (scalar.Value, error) {
	res := envcfg.ResolveFrom[T](r, name)
	if fallback == nil {
		v, err := res.Value()
		if err != nil {
			return scalar.Value{}, err
		}
		return scalar.Of(v), nil
	}

	fb, err := scalar.ParseAs[T](*fallback)
	if err != nil {
		return scalar.Value{}, InvalidFlagError{Flag: "or", Value: *fallback, Cause: err}
	}
	return scalar.Of(res.Or(fb)), nil
}
