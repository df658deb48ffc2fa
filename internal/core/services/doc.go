// Package services implements the driving port interfaces.
// Services contain the core formatting logic and call out to
// driven ports for language, translations and markup rendering.
//
// Services are pure Go with no CGO or external dependencies.
package services
