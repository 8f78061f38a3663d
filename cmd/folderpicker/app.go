// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"folder-picker/internal/args"
	"folder-picker/internal/config"
	"folder-picker/internal/dialog"
	"folder-picker/internal/issue"
	"folder-picker/internal/logging"
	"folder-picker/internal/output"
	"folder-picker/internal/pathcheck"

	"github.com/charmbracelet/log"
)

// Argument keys understood by the command. Anything else is ignored.
const (
	keyTitle           = "title"
	keyDefaultPath     = "default_path"
	keyReturnFullPaths = "return_full_paths"
	keyMultiFolder     = "multi-folder"
	keyMultiFolderAlt  = "multi_folder"
	keyMessage         = "message"
	keyConfig          = "config"
	keyVerbose         = "verbose"
)

type (
	// App wires the command's dependencies. It is the composition root for
	// the CLI layer: the Cobra handler only forwards its arguments to Run.
	App struct {
		Config ConfigProvider
		Picker dialog.Picker
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Picker dialog.Picker
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp builds an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		Picker: deps.Picker,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Picker == nil {
		app.Picker = dialog.NewZenityPicker()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// Run executes one picker invocation: parse argv, load defaults, validate
// the start directory, show the dialog and print the JSON result.
func (a *App) Run(ctx context.Context, argv []string) error {
	m := args.Parse(argv)
	verbose := m.IsTrue(keyVerbose)

	cfg, cfgErr := a.loadConfig(ctx, m)

	level := string(cfg.LogLevel)
	if verbose {
		level = string(config.LogLevelDebug)
	}
	logger := logging.New(a.stderr, level)

	if cfgErr != nil {
		logger.Warn("configuration ignored, using defaults", "error", formatError(cfgErr, verbose))
		if verbose {
			renderIssue(a.stderr, issue.ConfigLoadFailedId)
		}
	}

	req := buildRequest(m, cfg, logger)
	if verbose && m.Has(keyDefaultPath) && req.StartDir == "" {
		renderIssue(a.stderr, issue.DefaultPathInvalidId)
	}
	logger.Debug("opening folder dialog",
		"title", req.Title,
		"start_dir", req.StartDir,
		"multiple", req.Multiple,
	)

	paths, err := a.Picker.PickDirectories(ctx, req)
	if err != nil {
		return a.fail(classifyDialogError(err), verbose)
	}
	logger.Debug("dialog closed", "selected", len(paths))

	names := output.Names(paths, returnFullPaths(m, cfg))
	if err := output.Write(a.stdout, names); err != nil {
		return a.fail(&ExitError{Code: ExitFailure, Err: err, IssueID: issue.OutputWriteFailedId}, verbose)
	}
	return nil
}

// loadConfig never fails the run: a broken configuration degrades to defaults.
func (a *App) loadConfig(ctx context.Context, m args.Map) (*config.Config, error) {
	var opts config.LoadOptions
	if path, ok := m.GetString(keyConfig); ok && path != "" {
		opts.ConfigFilePath = path
	}

	cfg, err := a.Config.Load(ctx, opts)
	if err != nil || cfg == nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

// buildRequest merges command-line arguments over configuration defaults.
func buildRequest(m args.Map, cfg *config.Config, logger *log.Logger) dialog.Request {
	req := dialog.Request{
		Title:      cfg.Title,
		Message:    cfg.Message,
		Multiple:   cfg.MultiFolder,
		ShowHidden: cfg.ShowHidden,
	}
	if req.Title == "" {
		req.Title = dialog.DefaultTitle
	}

	if title, ok := m.GetString(keyTitle); ok && title != "" {
		req.Title = title
	}
	if msg, ok := m.GetString(keyMessage); ok {
		req.Message = msg
	}
	if v, ok := m.First(keyMultiFolder, keyMultiFolderAlt); ok {
		if multiple, isBool := v.AsBool(); isBool {
			req.Multiple = multiple
		} else {
			logger.Debug("ignoring non-boolean multi-folder value")
		}
	}

	if m.Has(keyDefaultPath) {
		req.StartDir = startDir(m, logger)
	}
	return req
}

// startDir validates --default_path. Invalid values are reported as a
// warning and the dialog falls back to the platform default location.
func startDir(m args.Map, logger *log.Logger) string {
	raw, ok := m.GetString(keyDefaultPath)
	if !ok || raw == "" {
		logger.Warn("default path ignored", "reason", "--default_path needs a directory value")
		return ""
	}

	dir, err := pathcheck.ResolveDir(raw)
	if err != nil {
		logger.Warn("default path ignored", "path", raw, "error", err)
		return ""
	}
	return dir
}

// returnFullPaths honors only the boolean true. The configured default
// applies when the argument is absent.
func returnFullPaths(m args.Map, cfg *config.Config) bool {
	if m.Has(keyReturnFullPaths) {
		return m.IsTrue(keyReturnFullPaths)
	}
	return cfg.ReturnFullPaths
}

func classifyDialogError(err error) *ExitError {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &ExitError{Code: ExitInterrupted, Err: err}
	case errors.Is(err, dialog.ErrUnavailable):
		return &ExitError{Code: ExitDialogFailed, Err: err, IssueID: issue.DialogUnavailableId}
	default:
		return &ExitError{Code: ExitDialogFailed, Err: err, IssueID: issue.DialogFailedId}
	}
}

// fail renders exitErr to stderr and marks it rendered.
func (a *App) fail(exitErr *ExitError, verbose bool) *ExitError {
	renderExitError(a.stderr, exitErr, verbose)
	exitErr.Rendered = true
	return exitErr
}

// formatError formats an error for user display. ActionableErrors include
// their suggestions; verbose mode adds the full error chain.
func formatError(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderExitError writes the styled message and, when an issue is attached,
// the catalog help. Rendering problems are never fatal.
func renderExitError(w io.Writer, exitErr *ExitError, verbose bool) {
	if exitErr == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatError(exitErr.Err, verbose))
	renderIssue(w, exitErr.IssueID)
}

// renderIssue writes the catalog help for id, falling back to the raw
// Markdown when glamour cannot render it.
func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("dark")
	if err != nil {
		fmt.Fprintln(w, SubtitleStyle.Render(string(entry.MarkdownMsg())))
		return
	}
	fmt.Fprint(w, rendered)
}
