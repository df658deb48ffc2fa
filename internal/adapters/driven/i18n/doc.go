// Package i18n provides the Translator port backed by go-i18n message bundles.
//
// Catalogues for English, French, Spanish and German are embedded from
// locales/active.<lang>.toml. English is the bundle default and serves any
// message a catalogue lacks. Lookups never fail: a message missing from
// every catalogue resolves to its key.
package i18n
