// Package htmltext renders markup fragments to text with the
// golang.org/x/net/html parser.
package htmltext

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkupRenderer = (*Renderer)(nil)

// Renderer parses fragments as the content of a <p> element and returns
// the concatenated text nodes. Comments and doctype nodes are dropped;
// entities are decoded by the parser.
type Renderer struct {
	context *html.Node
}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{
		context: &html.Node{
			Type:     html.ElementNode,
			Data:     "p",
			DataAtom: atom.P,
		},
	}
}

// Render returns the visible text of fragment.
func (r *Renderer) Render(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), r.context)
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		extractText(n, &sb)
	}
	return sb.String(), nil
}

// extractText appends the text nodes below n in document order.
func extractText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb)
	}
}
