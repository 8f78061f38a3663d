// SPDX-License-Identifier: MPL-2.0

// Package dialog shows the host platform's native directory-selection dialog.
//
// The production Picker is backed by github.com/ncruces/zenity, which uses
// IFileOpenDialog on Windows, osascript on macOS and the zenity family of
// tools (zenity, qarma, matedialog) elsewhere. Calls block until the user
// confirms or cancels; cancellation is not an error and yields an empty
// selection.
package dialog
