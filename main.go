// SPDX-License-Identifier: MPL-2.0

package main

import cmd "folder-picker/cmd/folderpicker"

func main() {
	cmd.Execute()
}
