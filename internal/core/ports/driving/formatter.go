package driving

import (
	"context"

	"github.com/custodia-labs/textfmt/internal/core/domain"
)

// TextFormatter normalizes text for display.
type TextFormatter interface {
	// BytesToSize formats a byte count with a localized unit label.
	// NaN or negative counts yield the localized "not applicable" string.
	// A negative precision falls back to domain.DefaultPrecision.
	BytesToSize(bytes float64, precision int) string

	// CleanTags strips markup and replaces newlines with a space (singleLine)
	// or a line break marker.
	CleanTags(text string, singleLine bool) (string, error)

	// ReplaceNewLines replaces every CRLF, CR or LF with newValue.
	ReplaceNewLines(text, newValue string) string

	// ShortenText truncates text at a word boundary and appends an ellipsis
	// when it is longer than length characters.
	ShortenText(text string, length int) string

	// FormatText resolves multilang tags, then optionally cleans and shortens.
	FormatText(ctx context.Context, text string, opts domain.FormatOptions) (string, error)

	// TreatMultilangTags keeps only the spans of the active language.
	TreatMultilangTags(ctx context.Context, text string) (string, error)
}
