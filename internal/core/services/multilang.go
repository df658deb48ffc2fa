package services

import (
	"regexp"
)

// Multilang spans use either <lang> or <span> as the delimiter and carry a
// lang attribute. The attribute must be preceded by at least one character
// after the tag name. Inner content is matched lazily and does not cross
// newlines, so adjacent spans stay separate matches.
const (
	multilangOpenPrefix = `<(?:lang|span)[^>]+lang="`
	multilangOpenSuffix = `"[^>]*>(.*?)</(?:lang|span)>`
)

// anyMultilangSpan matches a span for any language code.
var anyMultilangSpan = regexp.MustCompile(multilangOpenPrefix + `[a-zA-Z0-9_-]+` + multilangOpenSuffix)

// activeMultilangSpan builds the pattern for spans of a single language.
func activeMultilangSpan(lang string) (*regexp.Regexp, error) {
	return regexp.Compile(multilangOpenPrefix + regexp.QuoteMeta(lang) + multilangOpenSuffix)
}

// resolveMultilang unwraps spans of lang and then deletes every other span.
// The order matters: the generic sweep would otherwise remove the active
// language content too.
func resolveMultilang(text, lang string) (string, error) {
	active, err := activeMultilangSpan(lang)
	if err != nil {
		return "", err
	}

	text = active.ReplaceAllString(text, "${1}")
	return anyMultilangSpan.ReplaceAllString(text, ""), nil
}
