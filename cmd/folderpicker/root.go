// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand creates the folder-picker command bound to app.
func newRootCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "folder-picker [--key=value ...]",
		Short: "Native multi-folder picker that prints the selection as JSON",
		Long: `Open the native folder selection dialog and print the chosen folders
as a JSON array on standard output.

Arguments use the --key=value form; a bare --key means true.

  --title=<text>              dialog title (default "Multi Directory Picker")
  --default_path=<dir>        initial directory, ignored with a warning if invalid
  --return_full_paths[=true]  print absolute paths instead of folder names
  --multi-folder=<bool>       allow several folders (default true)
  --message=<text>            instruction shown where the dialog has a prompt
  --config=<file>             configuration file (.cue or .toml)
  --verbose                   debug diagnostics on standard error

A cancelled dialog prints []. If the dialog cannot be shown, nothing is
printed and the exit status is 2.`,
		Args: cobra.ArbitraryArgs,
		// The --key=value grammar is parsed by internal/args, not pflag.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, argv []string) error {
			return app.Run(cmd.Context(), argv)
		},
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// errorHandler leaves already-rendered diagnostics alone and defers
// everything else to fang's styled output.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Rendered {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// exitCode maps an Execute error to the process exit status.
func exitCode(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Execute runs the command against os.Args and exits with its status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	)
	os.Exit(int(exitCode(err)))
}
