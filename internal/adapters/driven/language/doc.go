// Package language provides LanguageResolver implementations.
//
// Resolver returns an explicit code (the format.language setting or the
// --lang flag) when one is given, otherwise the language of the LC_ALL,
// LC_MESSAGES or LANG environment variable, with "en" as the fallback.
// Codes are validated but never rewritten. Static always returns one
// code and is meant for tests.
package language
