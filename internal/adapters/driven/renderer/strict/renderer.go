// Package strict renders markup fragments to text with a bluemonday
// strict policy.
package strict

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkupRenderer = (*Renderer)(nil)

// Renderer strips every element and then decodes entities.
// The policy is built once and only read afterwards, so a Renderer is
// safe for concurrent use.
type Renderer struct {
	policy *bluemonday.Policy
}

// New creates a renderer. Stripped tags leave no space behind, matching
// the text-node concatenation of the html renderer.
func New() *Renderer {
	return &Renderer{policy: bluemonday.StrictPolicy()}
}

// Render returns the visible text of fragment. It never fails.
func (r *Renderer) Render(fragment string) (string, error) {
	return html.UnescapeString(r.policy.Sanitize(fragment)), nil
}
