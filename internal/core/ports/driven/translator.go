package driven

// Translator looks up localized strings for the caller's locale.
// Lookups are synchronous and never fail: implementations fall back
// to the message key when no translation exists.
type Translator interface {
	// Translate returns the localized message for key.
	// data supplies template parameters and may be nil.
	Translate(key string, data map[string]any) string

	// TranslateAll returns the localized message for each key, keyed by message key.
	TranslateAll(keys ...string) map[string]string
}
