package domain

// FormatOptions controls the FormatText pipeline.
type FormatOptions struct {
	// Clean strips markup after multilang resolution.
	Clean bool

	// SingleLine collapses newlines into spaces instead of line breaks.
	// Only consulted when Clean is set.
	SingleLine bool

	// ShortenLength is the maximum character count before truncation.
	// Zero or negative disables truncation.
	ShortenLength int
}

const (
	// Ellipsis is appended to shortened text.
	Ellipsis = "&hellip;"

	// LineBreak replaces newlines when cleaning multi-line text.
	LineBreak = "<br />"

	// DefaultPrecision is the number of decimals used by BytesToSize.
	DefaultPrecision = 2

	// MaxPrecision caps the decimals used by BytesToSize.
	MaxPrecision = 15
)
