// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LanguageResolver: Returns the active language code
//   - Translator: Looks up localized labels and templates
//   - MarkupRenderer: Returns the visible text of a markup fragment
//   - ConfigStore: Application configuration
//
// Failures returned by these ports are never recovered by core; they
// propagate to the caller wrapped with context.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
