// Package memory provides in-memory implementations of driven ports.
// They are used by tests and by callers that do not want a config file.
package memory
