// SPDX-License-Identifier: MPL-2.0

// Package args parses the `--key=value` argument grammar accepted by folder-picker.
//
// Parsing is total: every input list produces a Map, and arguments that do not
// start with "--" are silently ignored. Values are tagged as either strings or
// booleans; the literal strings "true" and "false" are the only values coerced
// to booleans, and a bare `--key` is the boolean true.
package args
