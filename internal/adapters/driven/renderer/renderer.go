package renderer

import (
	"fmt"

	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer/htmltext"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer/strict"
	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
)

// New returns the renderer registered under name.
func New(name domain.Renderer) (driven.MarkupRenderer, error) {
	switch name {
	case domain.RendererHTML:
		return htmltext.New(), nil
	case domain.RendererStrict:
		return strict.New(), nil
	default:
		return nil, fmt.Errorf("renderer %q: %w", name, domain.ErrUnsupportedRenderer)
	}
}
