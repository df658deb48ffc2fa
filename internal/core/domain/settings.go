package domain

const unknownDescription = "Unknown"

// Renderer identifies a markup renderer implementation.
type Renderer string

// Available renderers.
const (
	// RendererHTML parses fragments with an HTML5 parser and keeps text nodes.
	RendererHTML Renderer = "html"

	// RendererStrict strips every element with a strict sanitizer policy.
	RendererStrict Renderer = "strict"
)

// IsValid returns true if the renderer is recognised.
func (r Renderer) IsValid() bool {
	switch r {
	case RendererHTML, RendererStrict:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Renderer) String() string {
	return string(r)
}

// Description returns a human-readable description of the renderer.
func (r Renderer) Description() string {
	switch r {
	case RendererHTML:
		return "HTML (parse fragment, keep text nodes)"
	case RendererStrict:
		return "Strict (sanitizer strips all elements)"
	default:
		return unknownDescription
	}
}

// FormatSettings holds persisted formatting defaults.
type FormatSettings struct {
	// Language is the active language code. Empty means detect from the environment.
	Language string

	// Precision is the number of decimals used for byte sizes.
	Precision int

	// Renderer selects the markup renderer used when cleaning.
	Renderer Renderer

	// Clean, SingleLine and ShortenLength seed FormatOptions for the format command.
	Clean         bool
	SingleLine    bool
	ShortenLength int
}

// DefaultFormatSettings returns the built-in defaults.
func DefaultFormatSettings() FormatSettings {
	return FormatSettings{
		Language:  "",
		Precision: DefaultPrecision,
		Renderer:  RendererHTML,
	}
}

// Options returns the FormatOptions seeded from the settings.
func (s FormatSettings) Options() FormatOptions {
	return FormatOptions{
		Clean:         s.Clean,
		SingleLine:    s.SingleLine,
		ShortenLength: s.ShortenLength,
	}
}
