// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the folder-picker command.
//
// The root command does not use Cobra flag parsing: the whole argument list
// is handed to internal/args, which implements the `--key=value` grammar that
// callers of the helper rely on. Standard output carries exactly one JSON
// array; everything else goes to standard error.
package cmd
