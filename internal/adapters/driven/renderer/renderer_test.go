package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer/htmltext"
	"github.com/custodia-labs/textfmt/internal/adapters/driven/renderer/strict"
	"github.com/custodia-labs/textfmt/internal/core/domain"
)

func TestNew(t *testing.T) {
	html, err := New(domain.RendererHTML)
	require.NoError(t, err)
	assert.IsType(t, &htmltext.Renderer{}, html)

	s, err := New(domain.RendererStrict)
	require.NoError(t, err)
	assert.IsType(t, &strict.Renderer{}, s)
}

func TestNew_Unsupported(t *testing.T) {
	r, err := New("lynx")

	assert.ErrorIs(t, err, domain.ErrUnsupportedRenderer)
	assert.Nil(t, r)
}
