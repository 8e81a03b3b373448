// Package config handles loading and merging downpour configuration.
//
// # Resolution Order
//
// Settings resolve from three layers, strongest first:
//
//  1. Command line flags that were explicitly set (config.Overrides)
//  2. The TOML config file (~/.config/downpour/config.toml by default)
//  3. Compiled-in defaults (config.Defaults)
//
// A missing config file is not an error; the tool works out of the box
// with no configuration at all. A file that exists but fails to parse is an
// error, as are out-of-range values (Validate).
//
// # TOML Format
//
// Example config.toml:
//
//	color = "green"
//	highlight_color = "white"
//	highlight_length = 3
//	frequency_ms = 100
//	direction = "bottom"
//	spaces = 1
//
// Every field is optional. Color and direction names are kept as strings
// here; the app layer parses them into engine types so that one place owns
// the set of valid names.
//
// # Path Expansion
//
// The config file location accepts absolute paths, ~-prefixed paths, and
// relative paths (resolved against the working directory).
package config
