// SPDX-License-Identifier: MPL-2.0

package dialog

import (
	"context"
	"errors"
)

const (
	// DefaultTitle is the window title used when none is configured.
	DefaultTitle = "Multi Directory Picker"
	// DefaultMessage describes the multi-select gesture.
	DefaultMessage = "Hold Ctrl (Cmd on macOS) or Shift to select multiple folders."
)

var (
	// ErrUnavailable is returned when no native dialog backend can be found.
	ErrUnavailable = errors.New("native folder dialog unavailable")
	// ErrDialogFailed is returned when the dialog reported an error other than cancellation.
	ErrDialogFailed = errors.New("native folder dialog failed")
)

type (
	// Request configures one dialog invocation.
	Request struct {
		// Title is the window title.
		Title string
		// StartDir is the initial directory. Empty means the platform default.
		StartDir string
		// Message is the instructional text, shown where the backend has a prompt area.
		Message string
		// Multiple allows selecting more than one directory.
		Multiple bool
		// ShowHidden lists hidden directories.
		ShowHidden bool
	}

	// Picker displays a directory-selection dialog and blocks until it closes.
	// A cancelled dialog returns a nil slice and a nil error.
	Picker interface {
		PickDirectories(ctx context.Context, req Request) ([]string, error)
	}
)

// NewRequest returns a Request with the default title and message and
// multiple selection enabled.
func NewRequest() Request {
	return Request{
		Title:    DefaultTitle,
		Message:  DefaultMessage,
		Multiple: true,
	}
}
