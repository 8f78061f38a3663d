// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"folder-picker/internal/dialog"
)

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

type (
	// LogLevel is the minimum level written to the diagnostic stream.
	LogLevel string

	// Config holds the defaults applied before command-line arguments.
	Config struct {
		// Title is the dialog window title.
		Title string `json:"title" mapstructure:"title"`
		// Message is the instructional text passed to the dialog.
		Message string `json:"message" mapstructure:"message"`
		// MultiFolder allows selecting more than one directory.
		MultiFolder bool `json:"multi_folder" mapstructure:"multi_folder"`
		// ReturnFullPaths prints absolute paths instead of basenames.
		ReturnFullPaths bool `json:"return_full_paths" mapstructure:"return_full_paths"`
		// ShowHidden lists hidden directories in the dialog.
		ShowHidden bool `json:"show_hidden" mapstructure:"show_hidden"`
		// LogLevel is the diagnostic verbosity.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       dialog.DefaultTitle,
		Message:     dialog.DefaultMessage,
		MultiFolder: true,
		LogLevel:    LogLevelWarn,
	}
}

// Validate reports whether l is a known level.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, string(l))
	}
}

// Validate checks values that can bypass the schema through environment variables.
func (c *Config) Validate() error {
	return c.LogLevel.Validate()
}
