package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGitHubOwner    = "github.owner"
	keyGitHubRepo     = "github.repo"
	keyGitHubSort     = "github.sort"
	keyGitHubToken    = "github.token"
	keyOutputDir      = "output.dir"
	keyOutputNumbers  = "output.pr_numbers"
	keyOutputAuthors  = "output.authors"
	keyHistoryEnabled = "history.enabled"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		GitHub: domain.GitHubSettings{
			Owner: s.configStore.GetString(keyGitHubOwner),
			Repo:  s.configStore.GetString(keyGitHubRepo),
			Sort:  s.getSort(defaults.GitHub.Sort),
			Token: s.configStore.GetString(keyGitHubToken),
		},
		Output: domain.OutputSettings{
			Dir:       s.getString(keyOutputDir, defaults.Output.Dir),
			PRNumbers: s.getBool(keyOutputNumbers, defaults.Output.PRNumbers),
			Authors:   s.getBool(keyOutputAuthors, defaults.Output.Authors),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if settings.GitHub.Sort != "" && !domain.IsValidSortOrder(settings.GitHub.Sort) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSort, settings.GitHub.Sort)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyGitHubOwner, settings.GitHub.Owner},
		{keyGitHubRepo, settings.GitHub.Repo},
		{keyGitHubSort, settings.GitHub.Sort},
		{keyGitHubToken, settings.GitHub.Token},
		{keyOutputDir, settings.Output.Dir},
		{keyOutputNumbers, settings.Output.PRNumbers},
		{keyOutputAuthors, settings.Output.Authors},
		{keyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}

	return nil
}

// Keys returns the configuration keys accepted by Set.
func (s *SettingsService) Keys() []string {
	return []string{
		keyGitHubOwner, keyGitHubRepo, keyGitHubSort, keyGitHubToken,
		keyOutputDir, keyOutputNumbers, keyOutputAuthors, keyHistoryEnabled,
	}
}

// Set updates a single setting. Boolean keys accept strconv.ParseBool
// values; github.sort must be a supported sort order.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyGitHubOwner, keyGitHubRepo, keyGitHubToken, keyOutputDir:
		return s.configStore.Set(key, value)
	case keyGitHubSort:
		if !domain.IsValidSortOrder(value) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidSort, value)
		}
		return s.configStore.Set(key, value)
	case keyOutputNumbers, keyOutputAuthors, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Unset removes a setting so its default applies again.
func (s *SettingsService) Unset(key string) error {
	if !slices.Contains(s.Keys(), key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Delete(key)
}

// SetToken stores the GitHub token.
func (s *SettingsService) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyGitHubToken, token)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getSort(defaultVal string) string {
	val := s.configStore.GetString(keyGitHubSort)
	if !domain.IsValidSortOrder(val) {
		return defaultVal
	}
	return val
}
