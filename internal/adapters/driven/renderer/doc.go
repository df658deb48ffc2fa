// Package renderer selects a MarkupRenderer implementation by name.
//
// Implementations:
//   - htmltext: HTML5 fragment parser, keeps text nodes (default)
//   - strict: sanitizer policy that strips every element
package renderer
