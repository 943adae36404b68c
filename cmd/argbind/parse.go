// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"

	"github.com/invowk/argbind/internal/config"
	"github.com/invowk/argbind/pkg/lexer"
	"github.com/invowk/argbind/pkg/router"
)

var errLineAndArgs = errors.New("use either --line or arguments after --, not both")

func (a *app) parseCommand() *cobra.Command {
	var (
		line   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "parse <schema> [--line STR] [--format text|json|toml] [-- <args>...]",
		Short: "Bind an argument vector against a schema file",
		Long: `Bind an argument vector against a schema file and print the bound values.

Pass the vector after "--", or as one shell-quoted string with --line.
Exits with status 2 when the arguments do not match the schema.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat := a.cfg.Output.Format
			if format != "" {
				outFormat = config.OutputFormat(format)
			}
			if ok, errs := outFormat.IsValid(); !ok {
				return errs[0]
			}

			argv, err := commandLine(cmd, args, 1, line)
			if err != nil {
				return err
			}
			schema, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}

			a.logger.Debug("binding", "argv", argv)
			bound, err := router.Route(schema, lexer.Tokenize(argv), os.LookupEnv)
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}
			a.logger.Debug("bound", "path", bound.Path(), "arguments", len(bound.IDs()))
			return writeResult(cmd.OutOrStdout(), bound, outFormat)
		},
	}
	cmd.Flags().StringVar(&line, "line", "", "shell-quoted command line to bind instead of arguments after --")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or toml (default from config)")
	return cmd
}

func (a *app) tokensCommand() *cobra.Command {
	var line string
	cmd := &cobra.Command{
		Use:   "tokens [--line STR] [-- <args>...]",
		Short: "Show how an argument vector is tokenized",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			argv, err := commandLine(cmd, args, 0, line)
			if err != nil {
				return err
			}
			writeTokens(cmd.OutOrStdout(), argv)
			return nil
		},
	}
	cmd.Flags().StringVar(&line, "line", "", "shell-quoted command line to tokenize instead of arguments after --")
	return cmd
}

// commandLine returns the vector under test: the arguments after the leading lead
// positionals (normally given after "--"), or the shell words of line.
func commandLine(cmd *cobra.Command, args []string, lead int, line string) ([]string, error) {
	rest := args[lead:]
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		if dash != lead {
			return nil, fmt.Errorf("expected %d argument(s) before --, got %d", lead, dash)
		}
		rest = args[dash:]
	}
	if line == "" {
		return rest, nil
	}
	if len(rest) > 0 {
		return nil, errLineAndArgs
	}
	return splitLine(line)
}

// splitLine splits a shell-quoted line into words, expanding variables from the environment.
func splitLine(line string) ([]string, error) {
	words, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid --line: %w", err)
	}
	return words, nil
}
