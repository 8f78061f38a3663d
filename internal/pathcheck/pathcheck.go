// SPDX-License-Identifier: MPL-2.0

// Package pathcheck validates the optional starting directory for the folder dialog.
package pathcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"folder-picker/internal/issue"
)

const operation = "resolve default path"

var (
	// ErrNotExist is returned when the path does not exist.
	ErrNotExist = errors.New("path does not exist")
	// ErrNotDirectory is returned when the path exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// ResolveDir resolves path to an absolute path and confirms it names an
// existing directory. Symbolic links are followed, so a link to a directory
// is accepted and a link to a file is not.
//
// Errors are *issue.ActionableError values wrapping ErrNotExist,
// ErrNotDirectory, or the underlying stat error.
func ResolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation(operation).
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", issue.NewErrorContext().
			WithOperation(operation).
			WithResource(abs).
			WithSuggestion("Pass an existing directory").
			Wrap(fmt.Errorf("%w: %w", ErrNotExist, err)).
			BuildError()
	case err != nil:
		return "", issue.NewErrorContext().
			WithOperation(operation).
			WithResource(abs).
			WithSuggestion("Check the directory permissions").
			Wrap(err).
			BuildError()
	case !info.IsDir():
		return "", issue.NewErrorContext().
			WithOperation(operation).
			WithResource(abs).
			WithSuggestion("Pass the parent directory instead of a file").
			Wrap(ErrNotDirectory).
			BuildError()
	}

	return abs, nil
}
