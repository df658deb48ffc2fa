package language

import (
	"context"
	"fmt"
	"os"
	"strings"

	textlang "golang.org/x/text/language"

	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
	"github.com/custodia-labs/textfmt/internal/logger"
)

// Ensure resolvers implement the interface.
var (
	_ driven.LanguageResolver = (*Resolver)(nil)
	_ driven.LanguageResolver = Static("")
)

// DefaultLanguage is returned when nothing else is configured.
const DefaultLanguage = "en"

// envVars are consulted in POSIX locale precedence order.
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Static resolves to a fixed language code.
type Static string

// Resolve returns the fixed code.
func (s Static) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == "" {
		return "", domain.ErrLanguageUnavailable
	}
	return string(s), nil
}

// Resolver picks the active language from an explicit code or the
// environment. Codes are returned as written: multilang spans match the
// lang attribute byte for byte, so case and deprecated subtags are kept.
type Resolver struct {
	code   string
	lookup func(string) (string, bool)
}

// NewResolver creates a resolver. An empty code falls back to the
// environment locale.
func NewResolver(code string) *Resolver {
	return &Resolver{
		code:   code,
		lookup: os.LookupEnv,
	}
}

// Resolve returns the active language code.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.code != "" {
		return validate(r.code)
	}

	for _, name := range envVars {
		value, ok := r.lookup(name)
		if !ok || value == "" {
			continue
		}
		if code, ok := fromLocale(value); ok {
			logger.Debug("language: %s=%q resolves to %q", name, value, code)
			return code, nil
		}
	}

	return DefaultLanguage, nil
}

// validate checks that code is well-formed BCP 47 and returns it unchanged.
func validate(code string) (string, error) {
	if _, err := textlang.Parse(code); err != nil {
		return "", fmt.Errorf("language %q: %w", code, domain.ErrLanguageUnavailable)
	}
	logger.Info("language: using %q", code)
	return code, nil
}

// fromLocale extracts the language subtag of a POSIX locale such as
// "fr_FR.UTF-8" or "de_DE@euro", as written. "C" and "POSIX" carry no
// language.
func fromLocale(locale string) (string, bool) {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	locale = strings.ReplaceAll(locale, "_", "-")
	if _, err := textlang.Parse(locale); err != nil {
		return "", false
	}

	base, _, _ := strings.Cut(locale, "-")
	return base, true
}
