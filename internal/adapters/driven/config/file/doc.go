// Package file provides the file-based ConfigStore.
//
// Configuration lives in a TOML file, ~/.textfmt/config.toml by default.
// Tables are flattened into dot-notation keys on load and rebuilt on save,
// so "format.language" is written as:
//
//	[format]
//	language = "fr"
package file
