package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/textfmt/internal/core/domain"
	"github.com/custodia-labs/textfmt/internal/core/ports/driven"
	"github.com/custodia-labs/textfmt/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLanguage      = "format.language"
	keyPrecision     = "format.precision"
	keyRenderer      = "format.renderer"
	keyClean         = "format.clean"
	keySingleLine    = "format.single_line"
	keyShortenLength = "format.shorten_length"
)

var settingKeys = []string{
	keyLanguage,
	keyPrecision,
	keyRenderer,
	keyClean,
	keySingleLine,
	keyShortenLength,
}

// SettingsService manages formatting defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings.
func (s *SettingsService) Get() (*domain.FormatSettings, error) {
	defaults := domain.DefaultFormatSettings()

	settings := &domain.FormatSettings{
		Language:      s.getString(keyLanguage, defaults.Language),
		Precision:     s.getPrecision(defaults.Precision),
		Renderer:      s.getRenderer(defaults.Renderer),
		Clean:         s.getBool(keyClean, defaults.Clean),
		SingleLine:    s.getBool(keySingleLine, defaults.SingleLine),
		ShortenLength: s.getInt(keyShortenLength, defaults.ShortenLength),
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.FormatSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Renderer.IsValid() {
		return fmt.Errorf("save renderer %q: %w", settings.Renderer, domain.ErrUnsupportedRenderer)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyLanguage, settings.Language},
		{keyPrecision, settings.Precision},
		{keyRenderer, settings.Renderer.String()},
		{keyClean, settings.Clean},
		{keySingleLine, settings.SingleLine},
		{keyShortenLength, settings.ShortenLength},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Set updates a single setting, parsing value for the key's type.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyLanguage:
		settings.Language = value
	case keyRenderer:
		renderer := domain.Renderer(value)
		if !renderer.IsValid() {
			return fmt.Errorf("renderer %q: %w", value, domain.ErrUnsupportedRenderer)
		}
		settings.Renderer = renderer
	case keyPrecision, keyShortenLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, domain.ErrInvalidInput)
		}
		if key == keyPrecision {
			settings.Precision = n
		} else {
			settings.ShortenLength = n
		}
	case keyClean, keySingleLine:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects a boolean: %w", key, domain.ErrInvalidInput)
		}
		if key == keyClean {
			settings.Clean = b
		} else {
			settings.SingleLine = b
		}
	default:
		return fmt.Errorf("%s: %w", key, domain.ErrUnknownSetting)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.FormatSettings {
	return domain.DefaultFormatSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getPrecision(defaultVal int) int {
	precision := s.getInt(keyPrecision, defaultVal)
	if precision < 0 {
		return defaultVal
	}
	return precision
}

func (s *SettingsService) getRenderer(defaultVal domain.Renderer) domain.Renderer {
	val := s.configStore.GetString(keyRenderer)
	if val == "" {
		return defaultVal
	}
	renderer := domain.Renderer(val)
	if !renderer.IsValid() {
		return defaultVal
	}
	return renderer
}
