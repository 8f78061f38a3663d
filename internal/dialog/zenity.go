// SPDX-License-Identifier: MPL-2.0

package dialog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"folder-picker/internal/issue"

	"github.com/ncruces/zenity"
)

type zenityPicker struct {
	available      func() bool
	selectMultiple func(options ...zenity.Option) ([]string, error)
	selectOne      func(options ...zenity.Option) (string, error)
}

// NewZenityPicker returns the production Picker.
func NewZenityPicker() Picker {
	return &zenityPicker{
		available:      zenity.IsAvailable,
		selectMultiple: zenity.SelectFileMultiple,
		selectOne:      zenity.SelectFile,
	}
}

// PickDirectories implements Picker.
func (p *zenityPicker) PickDirectories(ctx context.Context, req Request) ([]string, error) {
	if !p.available() {
		return nil, issue.NewErrorContext().
			WithOperation("open folder dialog").
			WithSuggestion("Install zenity, qarma or matedialog (Linux/BSD)").
			WithSuggestion("Run from a graphical session").
			Wrap(ErrUnavailable).
			BuildError()
	}

	opts := options(ctx, req)

	var (
		paths []string
		err   error
	)
	if req.Multiple {
		paths, err = p.selectMultiple(opts...)
	} else {
		var path string
		path, err = p.selectOne(opts...)
		if path != "" {
			paths = []string{path}
		}
	}

	switch {
	case errors.Is(err, zenity.ErrCanceled):
		return nil, nil
	case err != nil && ctx.Err() != nil:
		return nil, fmt.Errorf("folder dialog interrupted: %w", ctx.Err())
	case err != nil:
		return nil, issue.NewErrorContext().
			WithOperation("open folder dialog").
			WithResource(req.Title).
			WithSuggestion("Re-run with --verbose for the full error chain").
			Wrap(fmt.Errorf("%w: %w", ErrDialogFailed, err)).
			BuildError()
	}

	return paths, nil
}

// options translates a Request into zenity options. zenity's directory
// selection has no prompt area, so Message is not forwarded.
func options(ctx context.Context, req Request) []zenity.Option {
	opts := []zenity.Option{
		zenity.Context(ctx),
		zenity.Directory(),
	}
	if req.Title != "" {
		opts = append(opts, zenity.Title(req.Title))
	}
	if req.StartDir != "" {
		opts = append(opts, zenity.Filename(asDirectory(req.StartDir)))
	}
	if req.ShowHidden {
		opts = append(opts, zenity.ShowHidden())
	}
	return opts
}

// asDirectory appends a trailing separator so backends open inside dir
// instead of preselecting it in its parent.
func asDirectory(dir string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}
