// SPDX-License-Identifier: MPL-2.0

// Package logging builds the diagnostic logger. Diagnostics always go to the
// writer passed in (stderr in production); stdout is reserved for the JSON result.
package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix tags every diagnostic line.
const Prefix = "folder-picker"

var (
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorVerbose = lipgloss.Color("#9CA3AF")
)

// New returns a logger writing to w at the given level name. Unknown level
// names fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	})
	logger.SetStyles(styles())
	return logger
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBU").
		Foreground(colorVerbose)
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(colorWarning)
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERRO").
		Bold(true).
		Foreground(colorError)
	return s
}
