package i18n

import (
	"bytes"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/logger"
)

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()
	bundle, err := NewBundle()
	require.NoError(t, err)
	return bundle
}

func TestNewBundle_LoadsEmbeddedCatalogues(t *testing.T) {
	bundle := newTestBundle(t)

	langs := bundle.Languages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "fr")
	assert.Contains(t, langs, "es")
	assert.Contains(t, langs, "de")
}

func TestTranslator_Translate(t *testing.T) {
	tests := []struct {
		lang     string
		key      string
		expected string
	}{
		{"en", domain.MsgSizeB, "bytes"},
		{"en", domain.MsgSizeKB, "KB"},
		{"en", domain.MsgNotApplicable, "n/a"},
		{"fr", domain.MsgSizeB, "octets"},
		{"fr", domain.MsgSizeMB, "Mo"},
		{"de", domain.MsgNotApplicable, "k. A."},
		{"es", domain.MsgSizeTB, "TB"},
	}

	bundle := newTestBundle(t)

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			translator := bundle.ForLanguage(tt.lang)
			assert.Equal(t, tt.expected, translator.Translate(tt.key, nil))
		})
	}
}

func TestTranslator_Translate_Template(t *testing.T) {
	translator := newTestBundle(t).ForLanguage("en")

	result := translator.Translate(domain.MsgHumanReadableSize, map[string]any{
		"Size": "1.5",
		"Unit": "KB",
	})

	assert.Equal(t, "1.5 KB", result)
}

func TestTranslator_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	bundle := newTestBundle(t)

	for _, code := range []string{"it", "pt-br", "not a language", ""} {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, "bytes", bundle.ForLanguage(code).Translate(domain.MsgSizeB, nil))
		})
	}
}

func TestTranslator_RegionalVariantMatchesBaseLanguage(t *testing.T) {
	translator := newTestBundle(t).ForLanguage("fr-CA")

	assert.Equal(t, "Ko", translator.Translate(domain.MsgSizeKB, nil))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	translator := newTestBundle(t).ForLanguage("fr")

	assert.Equal(t, "core.unknown", translator.Translate("core.unknown", nil))
}

func TestTranslator_MissingKeyLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	newTestBundle(t).ForLanguage("de").Translate("core.unknown", nil)

	assert.Contains(t, buf.String(), "[WARN] i18n: core.unknown")
}

func TestTranslator_TranslateAll(t *testing.T) {
	translator := newTestBundle(t).ForLanguage("fr")

	labels := translator.TranslateAll(domain.SizeMessageKeys()...)

	assert.Equal(t, map[string]string{
		domain.MsgSizeB:  "octets",
		domain.MsgSizeKB: "Ko",
		domain.MsgSizeMB: "Mo",
		domain.MsgSizeGB: "Go",
		domain.MsgSizeTB: "To",
	}, labels)
}

func TestBundle_LoadFS_ExtraCatalogue(t *testing.T) {
	bundle := newTestBundle(t)
	extra := fstest.MapFS{
		"extra/active.it.toml": &fstest.MapFile{Data: []byte(`"core.sizeb" = "byte"` + "\n")},
	}

	require.NoError(t, bundle.LoadFS(extra, "extra"))

	translator := bundle.ForLanguage("it")
	assert.Equal(t, "byte", translator.Translate(domain.MsgSizeB, nil))
	// Messages the catalogue lacks come from English.
	assert.Equal(t, "KB", translator.Translate(domain.MsgSizeKB, nil))
}

func TestBundle_LoadFS_InvalidCatalogue(t *testing.T) {
	bundle := newTestBundle(t)
	broken := fstest.MapFS{
		"broken/active.it.toml": &fstest.MapFile{Data: []byte("= nope")},
	}

	assert.Error(t, bundle.LoadFS(broken, "broken"))
}
