// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/invowk/argbind/internal/config"
	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/pkg/argerr"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	verbose bool
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
}

func newApp(stderr io.Writer) *app {
	return &app{
		cfg:    config.DefaultConfig(),
		logger: log.NewWithOptions(stderr, log.Options{Prefix: "argbind"}),
	}
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string) int {
	a := newApp(os.Stderr)
	root := a.rootCommand()
	root.SetArgs(args)

	err := fang.Execute(ctx, root,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(a.handleError),
	)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitFailure
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "argbind",
		Short: "Bind command-line arguments to a declarative schema",
		Long: titleStyle.Render("argbind") + subtitleStyle.Render(" - declarative command-line argument binding") + `

argbind reads a command tree declared in CUE, TOML or HCL and binds argument
vectors against it, reporting typed values or a precise diagnostic.

` + subtitleStyle.Render("Examples:") + `
  argbind check app.cue                            Validate a schema file
  argbind parse app.cue -- build --release x86     Bind an argument vector
  argbind parse app.toml --line 'serve -m prod'    Bind a shell-quoted line
  argbind tokens -- -vv --name=x                   Show how argv is tokenized`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.initConfig(cmd.Context(), cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is <user config dir>/argbind/config.cue)")

	root.AddCommand(a.checkCommand(), a.parseCommand(), a.tokensCommand())
	return root
}

// initConfig loads configuration and applies it to logging and styling. A broken
// config is reported as a warning and the defaults are used.
func (a *app) initConfig(ctx context.Context, stderr io.Writer) {
	loaded, err := config.LoadWithSource(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		fmt.Fprintln(stderr, warningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
	} else {
		a.cfg = loaded.Config
	}

	if !a.verbose {
		a.verbose = a.cfg.UI.Verbose
	}
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	switch a.cfg.UI.Color {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		a.logger.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
		a.logger.SetColorProfile(termenv.TrueColor)
	case config.ColorAuto:
	}

	if err == nil && loaded.Path != "" {
		a.logger.Debug("configuration loaded", "path", loaded.Path)
	}
}

// handleError prints failures. Binding diagnostics and actionable errors get their own
// rendering; everything else goes through fang's default handler.
func (a *app) handleError(w io.Writer, styles fang.Styles, err error) {
	if ve, ok := argerr.As(err); ok && ve != nil {
		fmt.Fprintln(w, renderDiagnostic(err))
		a.renderIssue(w, issue.InvalidArgumentsId)
		return
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(w, errorStyle.Render("Error: ")+ae.Format(a.verbose))
		a.renderIssue(w, ae.IssueID)
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// renderIssue prints Markdown guidance in verbose mode.
func (a *app) renderIssue(w io.Writer, id issue.Id) {
	iss := issue.Get(id)
	if !a.verbose || iss == nil {
		return
	}
	style := "auto"
	if a.cfg.UI.Color == config.ColorNever {
		style = "notty"
	}
	out, err := iss.Render(style)
	if err != nil {
		a.logger.Debug("rendering guidance failed", "err", err)
		return
	}
	fmt.Fprint(w, out)
}

func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
