package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
	"github.com/custodia-labs/textfmt/internal/logger"
)

// Ensure Translator implements the interface.
var _ driven.Translator = (*Translator)(nil)

//go:embed locales/*.toml
var catalogues embed.FS

// Bundle holds every loaded catalogue.
type Bundle struct {
	bundle *goi18n.Bundle
}

// NewBundle creates a bundle with the embedded catalogues loaded.
func NewBundle() (*Bundle, error) {
	b := &Bundle{bundle: goi18n.NewBundle(language.English)}
	b.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := b.LoadFS(catalogues, "locales"); err != nil {
		return nil, err
	}

	return b, nil
}

// LoadFS loads every *.toml catalogue in dir of fsys.
// File names carry the language, e.g. active.pt-BR.toml.
func (b *Bundle) LoadFS(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return fmt.Errorf("list catalogues: %w", err)
	}

	for _, file := range files {
		if _, err := b.bundle.LoadMessageFileFS(fsys, file); err != nil {
			return fmt.Errorf("load catalogue %s: %w", file, err)
		}
		logger.Debug("i18n: loaded catalogue %s", file)
	}

	return nil
}

// Languages returns the languages with a loaded catalogue.
func (b *Bundle) Languages() []string {
	tags := b.bundle.LanguageTags()
	langs := make([]string, len(tags))
	for i, tag := range tags {
		langs[i] = tag.String()
	}
	return langs
}

// ForLanguage returns a Translator for the given language code.
// Unknown or unparsable codes fall back to English.
func (b *Bundle) ForLanguage(code string) *Translator {
	return &Translator{
		lang:      code,
		localizer: goi18n.NewLocalizer(b.bundle, code),
	}
}

// Translator looks up messages for one language.
type Translator struct {
	lang      string
	localizer *goi18n.Localizer
}

// Translate returns the localized message for key, or key itself when
// no catalogue defines it.
func (t *Translator) Translate(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		logger.Warn("i18n: %s for %q: %v", key, t.lang, err)
		if msg == "" {
			return key
		}
	}
	return msg
}

// TranslateAll returns the localized message of each key.
func (t *Translator) TranslateAll(keys ...string) map[string]string {
	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = t.Translate(key, nil)
	}
	return result
}
