// SPDX-License-Identifier: MPL-2.0

// Package config handles folder-picker defaults using Viper.
//
// Built-in defaults can be overridden by a configuration file and by
// FOLDER_PICKER_* environment variables. The file is looked up in the
// platform config directory ($XDG_CONFIG_HOME/folder-picker on Linux,
// ~/Library/Application Support/folder-picker on macOS, %APPDATA%\folder-picker
// on Windows) as config.cue, then config.toml. Both formats are validated
// against the embedded CUE schema (config_schema.cue), so unknown keys and
// mistyped values are reported the same way.
//
// Command-line arguments always take precedence over anything loaded here.
package config
