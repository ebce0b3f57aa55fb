// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the envcfg command, a thin shell around the envcfg package
// for setting variables and printing how declarations resolve.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/z5labs/envcfg"
	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/internal/logging"
	"github.com/z5labs/envcfg/internal/try"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type options struct {
	env    env.ReadWriter
	stdout io.Writer
	stderr io.Writer
}

// Option configures the command.
type Option func(*options)

// Env sets the environment variables are read from and written to.
func Env(rw env.ReadWriter) Option {
	return func(o *options) {
		o.env = rw
	}
}

// Output redirects the standard output and error streams of the command.
func Output(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

type app struct {
	options

	v          *viper.Viper
	logHandler slog.Handler
	shutdown   func(context.Context) error
}

// Execute runs the envcfg command with the given arguments.
func Execute(ctx context.Context, args []string, opts ...Option) (err error) {
	defer try.Recover(&err)

	a := newApp(opts...)
	cmd := a.command()
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(ctx)
	if a.shutdown == nil {
		return err
	}
	return errors.Join(err, a.shutdown(ctx))
}

func newApp(opts ...Option) *app {
	o := options{
		env:    env.OS{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetEnvPrefix("ENVCFG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{
		options: o,
		v:       v,
	}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:               "envcfg",
		Short:             "Resolve typed configuration values from environment variables",
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "minimum level of log records (debug, info, warn, error)")
	flags.String("log-format", "text", "format of log records (text, json)")
	flags.Bool("mask-values", true, "mask resolved values in log records")
	flags.Bool("trace", false, "write trace spans to stderr")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.printCommand(),
		a.getCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, args []string) error {
	lvl, err := logging.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}

	var mask []string
	if a.v.GetBool("mask-values") {
		mask = append(mask, "value")
	}
	a.logHandler, err = logging.NewHandler(a.stderr, logging.Options{
		Level:    lvl,
		Format:   a.v.GetString("log-format"),
		MaskKeys: mask,
	})
	if err != nil {
		return err
	}

	if !a.v.GetBool("trace") {
		return nil
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(a.stderr),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)
	a.shutdown = tp.Shutdown
	return nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the envcfg version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), envcfg.Version+"\n")
			return err
		},
	}
}
