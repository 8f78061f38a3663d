// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	DialogUnavailableId Id = iota + 1
	DialogFailedId
	DefaultPathInvalidId
	ConfigLoadFailedId
	OutputWriteFailedId
)

type (
	// Id identifies an entry in the issue catalog.
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a catalog entry: Markdown help shown on the diagnostic stream.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

var (
	render = glamour.Render

	dialogUnavailableIssue = &Issue{
		id: DialogUnavailableId,
		mdMsg: `
# No folder dialog available!

folder-picker could not find a native dialog backend on this system.

## Things you can try:
- Linux/BSD: install one of ` + "`zenity`" + `, ` + "`qarma`" + ` or ` + "`matedialog`" + `:
~~~
$ sudo apt install zenity
~~~
- macOS: make sure ` + "`osascript`" + ` is on your PATH
- Run from a graphical session (DISPLAY or WAYLAND_DISPLAY must be set)`,
		docLinks: []HttpLink{"https://github.com/ncruces/zenity"},
	}

	dialogFailedIssue = &Issue{
		id: DialogFailedId,
		mdMsg: `
# The folder dialog failed!

The native dialog was started but reported an error instead of a selection.
Nothing was written to standard output, so callers can tell this apart from
a cancelled dialog (which prints ` + "`[]`" + `).

## Things you can try:
- Re-run with ` + "`--verbose`" + ` to see the full error chain
- Check that the dialog tool works on its own:
~~~
$ zenity --file-selection --directory --multiple
~~~`,
	}

	defaultPathInvalidIssue = &Issue{
		id: DefaultPathInvalidId,
		mdMsg: `
# Default path ignored

The value of ` + "`--default_path`" + ` is missing, is not a directory, or cannot be read.
The dialog opened at the platform default location instead.

## Things you can try:
- Pass an existing directory, e.g. ` + "`--default_path=$HOME`" + `
- Check the directory permissions`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Built-in defaults were used instead.

## Configuration file locations:
- Linux: ~/.config/folder-picker/config.cue (or config.toml)
- macOS: ~/Library/Application Support/folder-picker/config.cue
- Windows: %APPDATA%\folder-picker\config.cue

## Example configuration:
~~~cue
title: "Pick project folders"
multi_folder: true
return_full_paths: true
log_level: "warn"
~~~`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Could not write the selection!

The JSON result could not be written to standard output.

## Things you can try:
- Make sure the calling process keeps the stdout pipe open until folder-picker exits`,
	}

	issues = map[Id]*Issue{
		dialogUnavailableIssue.Id():  dialogUnavailableIssue,
		dialogFailedIssue.Id():       dialogFailedIssue,
		defaultPathInvalidIssue.Id(): defaultPathInvalidIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		outputWriteFailedIssue.Id():  outputWriteFailedIssue,
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the Markdown message with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

// Ids returns every catalog id in ascending order.
func Ids() []Id {
	return slices.Sorted(maps.Keys(issues))
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
