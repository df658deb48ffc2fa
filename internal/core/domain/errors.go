package domain

import "errors"

// Domain errors represent formatting and configuration failures.
// Collaborator errors are wrapped, never replaced.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedRenderer indicates an unknown markup renderer name.
	ErrUnsupportedRenderer = errors.New("unsupported renderer")

	// ErrLanguageUnavailable indicates no active language could be resolved.
	ErrLanguageUnavailable = errors.New("language unavailable")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
