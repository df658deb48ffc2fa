package driven

import "context"

// LanguageResolver returns the language currently selected for display.
// Resolution may block (e.g. consult configuration or a remote profile),
// so it takes a context. It is the only suspension point of the formatter.
type LanguageResolver interface {
	// Resolve returns the active language code, such as "en" or "pt-br".
	Resolve(ctx context.Context) (string, error)
}
