// SPDX-License-Identifier: MPL-2.0

// Package output formats a folder selection as the JSON array written to stdout.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
)

// Names returns the values to print for paths: the paths unchanged when
// fullPaths is true, otherwise the final path element of each. Order is
// preserved and the result is never nil.
func Names(paths []string, fullPaths bool) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if fullPaths {
			names = append(names, p)
			continue
		}
		names = append(names, filepath.Base(p))
	}
	return names
}

// Write encodes names as a single JSON array on w. A nil slice is written as [].
func Write(w io.Writer, names []string) error {
	if names == nil {
		names = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(names); err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	// Encode terminates the value with a newline; stdout carries the array only.
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}
