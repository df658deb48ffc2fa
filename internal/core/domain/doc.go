// Package domain defines the core types for textfmt.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental values:
//
//   - FormatOptions: Flags controlling the format pipeline
//   - SizeUnit: The byte-size unit scale and its message keys
//   - FormatSettings: Persisted defaults for the CLI
//   - Message keys: Translation identifiers used by the formatter
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
