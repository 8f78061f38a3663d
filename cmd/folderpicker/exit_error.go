// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"folder-picker/internal/issue"
)

const (
	// ExitOK means a selection (possibly empty) was printed.
	ExitOK ExitCode = 0
	// ExitFailure is an unexpected internal error.
	ExitFailure ExitCode = 1
	// ExitDialogFailed means the dialog could not be shown; stdout is empty.
	ExitDialogFailed ExitCode = 2
	// ExitInterrupted means the process was interrupted before the dialog closed.
	ExitInterrupted ExitCode = 130
)

type (
	// ExitCode is the process exit status.
	ExitCode int

	// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
	ExitError struct {
		Code ExitCode
		Err  error
		// IssueID optionally points at the catalog entry explaining the failure.
		IssueID issue.Id
		// Rendered is set once the diagnostic has been written to stderr.
		Rendered bool
	}
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
