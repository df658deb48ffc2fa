package driving

import "github.com/custodia-labs/textfmt/internal/core/domain"

// SettingsService manages persisted formatting defaults.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.FormatSettings, error)

	// Save persists settings.
	Save(settings *domain.FormatSettings) error

	// Set updates a single setting by key, parsing value for its type.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.FormatSettings
}
