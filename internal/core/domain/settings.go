package domain

const unknownDescription = "Unknown"

// AppSettings holds the persisted application settings.
type AppSettings struct {
	GitHub  GitHubSettings
	Output  OutputSettings
	History HistorySettings
}

// GitHubSettings configures where pull requests are fetched from.
type GitHubSettings struct {
	// Owner and Repo are used when the flags are omitted.
	Owner string
	Repo  string

	// Sort is the default search sort order.
	Sort string

	// Token is a personal access token. Optional: anonymous requests
	// are limited to 60 per hour.
	Token string
}

// HasToken returns true if a token is stored.
func (s GitHubSettings) HasToken() bool {
	return s.Token != ""
}

// OutputSettings configures rendering and persistence defaults.
type OutputSettings struct {
	// Dir is the directory documents are written to.
	Dir string

	// PRNumbers shows pull request numbers by default.
	PRNumbers bool

	// Authors writes the contributors document by default.
	Authors bool
}

// HistorySettings configures the run history.
type HistorySettings struct {
	Enabled bool
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		GitHub: GitHubSettings{
			Sort: DefaultSortOrder,
		},
		Output: OutputSettings{
			Dir: ".",
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}
