// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by folder-picker tests: file
// fixtures that fail the test on error, and a scripted dialog.Picker.
package testutil
