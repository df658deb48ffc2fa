package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
	"github.com/custodia-labs/textfmt/internal/core/ports/driving"
	"github.com/custodia-labs/textfmt/internal/logger"
)

// Ensure Formatter implements the interface.
var _ driving.TextFormatter = (*Formatter)(nil)

var (
	// anyTag is the coarse first pass of CleanTags; the renderer is authoritative.
	anyTag   = regexp.MustCompile(`(<([^>]+)>)`)
	newLines = regexp.MustCompile(`\r\n|\r|\n`)
)

// Formatter normalizes text for display.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	language   driven.LanguageResolver
	translator driven.Translator
	renderer   driven.MarkupRenderer
}

// NewFormatter creates a formatter from its three collaborators.
func NewFormatter(
	language driven.LanguageResolver,
	translator driven.Translator,
	renderer driven.MarkupRenderer,
) *Formatter {
	return &Formatter{
		language:   language,
		translator: translator,
		renderer:   renderer,
	}
}

// BytesToSize formats a byte count with a localized unit label.
// NaN, infinite and negative counts are not applicable.
func (f *Formatter) BytesToSize(bytes float64, precision int) string {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes < 0 {
		return f.translator.Translate(domain.MsgNotApplicable, nil)
	}
	if precision < 0 {
		precision = domain.DefaultPrecision
	}
	precision = min(precision, domain.MaxPrecision)

	keys := domain.SizeMessageKeys()
	labels := f.translator.TranslateAll(keys...)

	unit := domain.SizeUnitByte
	for bytes >= domain.SizeRadix && unit < domain.MaxSizeUnit {
		bytes /= domain.SizeRadix
		unit++
	}

	return f.translator.Translate(domain.MsgHumanReadableSize, map[string]any{
		"Size": humanize.FtoaWithDigits(roundToDecimals(bytes, precision), precision),
		"Unit": labels[unit.MessageKey()],
	})
}

// roundToDecimals rounds half away from zero to the given number of decimals.
func roundToDecimals(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}

// CleanTags strips markup and replaces newlines.
func (f *Formatter) CleanTags(text string, singleLine bool) (string, error) {
	text = anyTag.ReplaceAllString(text, "")

	rendered, err := f.renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}

	replacement := domain.LineBreak
	if singleLine {
		replacement = " "
	}
	return f.ReplaceNewLines(rendered, replacement), nil
}

// ReplaceNewLines replaces every CRLF, CR or LF with newValue.
func (f *Formatter) ReplaceNewLines(text, newValue string) string {
	return newLines.ReplaceAllLiteralString(text, newValue)
}

// ShortenText truncates text to length characters, backs off to the last
// space and appends an ellipsis. Shorter text is returned unchanged.
func (f *Formatter) ShortenText(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	if length < 0 {
		length = 0
	}

	text = string(runes[:length])
	if pos := strings.LastIndex(text, " "); pos > 0 {
		text = text[:pos]
	}
	return text + domain.Ellipsis
}

// FormatText resolves multilang tags, then cleans and shortens as requested.
// The steps always run in that order.
func (f *Formatter) FormatText(ctx context.Context, text string, opts domain.FormatOptions) (string, error) {
	logger.Section("Format")
	formatted, err := f.TreatMultilangTags(ctx, text)
	if err != nil {
		return "", err
	}

	if opts.Clean {
		logger.Debug("formatter: cleaning tags (single line: %t)", opts.SingleLine)
		formatted, err = f.CleanTags(formatted, opts.SingleLine)
		if err != nil {
			return "", err
		}
	}

	if opts.ShortenLength > 0 {
		logger.Debug("formatter: shortening to %d characters", opts.ShortenLength)
		formatted = f.ShortenText(formatted, opts.ShortenLength)
	}

	return formatted, nil
}

// TreatMultilangTags keeps the content of spans for the active language
// and removes spans of every other language. Empty text returns
// immediately without resolving the language.
func (f *Formatter) TreatMultilangTags(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	lang, err := f.language.Resolve(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve language: %w", err)
	}
	logger.Debug("formatter: resolving multilang spans for %q", lang)

	resolved, err := resolveMultilang(text, lang)
	if err != nil {
		return "", fmt.Errorf("multilang pattern for %q: %w", lang, err)
	}
	return resolved, nil
}
