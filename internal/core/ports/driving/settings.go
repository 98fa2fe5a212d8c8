package driving

import "github.com/custodia-labs/relnote/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its configuration key.
	Set(key, value string) error

	// Unset removes a setting so its default applies again.
	Unset(key string) error

	// Keys returns the configuration keys accepted by Set.
	Keys() []string

	// SetToken stores the GitHub token.
	SetToken(token string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
