// Package config provides layered configuration for the gitcz application.
//
// Values are resolved in order: built-in defaults, then the optional YAML
// config file ($XDG_CONFIG_HOME/gitcz/gitcz.yaml or --config), then
// GITCZ_-prefixed environment variables, with command-line flags applied
// last by the CLI layer. Environment variables use a double underscore to
// separate nesting levels, so GITCZ_UI__COLOR maps to ui.color.
//
// The commit type menu is deliberately not configurable; it is a fixed
// part of the message contract.
//
// Finalize resolves the repository path to the working directory and
// fills in XDG-located defaults for the debug log file and the scope
// history state file.
package config
