// Package cli provides the cobra command surface of textfmt.
//
// Commands read their text from the single positional argument or, when
// none is given and stdin is not a terminal, from stdin. Results go to
// stdout; --verbose sends debug logs to stderr.
//
// The package never builds adapters itself. main supplies a Wiring that
// opens the settings service and builds a formatter from settings.
package cli
