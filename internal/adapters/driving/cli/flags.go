package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/logger"
)

// defaultExportFile is where search payloads are kept.
const defaultExportFile = "githublist.json"

// addCriteriaFlags registers the criterion lists and rendering toggles.
// StringArray keeps commas intact so "bug,blocked" stays one compound.
func addCriteriaFlags(fs *pflag.FlagSet) {
	fs.StringArray("label-exclude", nil, "label whose pull requests are left out (repeatable, comma for OR)")
	fs.StringArray("label-include", nil, "label whose pull requests get their own section (repeatable, comma for OR)")
	fs.StringArray("word-exclude", nil, "title word whose pull requests are left out (repeatable, comma for OR)")
	fs.StringArray("word-include", nil, "title word whose pull requests get their own section (repeatable, comma for OR)")
	fs.Bool("authors", false, "also write the contributors list")
	fs.Bool("pr-nb", false, "show pull request numbers in links")
}

// addMilestoneFlags registers the repository and milestone selection.
func addMilestoneFlags(fs *pflag.FlagSet, withToken bool) {
	fs.StringP("owner", "o", "", "repository owner (default from config)")
	fs.StringP("repo", "r", "", "repository name (default from config)")
	fs.StringP("milestone", "m", "", "milestone title")
	fs.StringP("sort", "s", "", "search sort order: "+strings.Join(domain.SortOrders(), ", "))
	if withToken {
		fs.StringP("token", "t", "", "GitHub token (default $GITHUB_TOKEN, then config)")
	}
}

// loadSettings returns the stored settings, or the defaults when none
// can be read.
func loadSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil || settings == nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

// resolveOutputDir prefers --output-dir over the configured directory.
func resolveOutputDir(settings domain.AppSettings) string {
	if outputDir != "" {
		return outputDir
	}
	if settings.Output.Dir != "" {
		return settings.Output.Dir
	}
	return "."
}

// releaseNoteRequest builds a request from the criteria flags. Toggles
// that were not given fall back to the configured defaults.
func releaseNoteRequest(cmd *cobra.Command, settings domain.AppSettings) domain.ReleaseNoteRequest {
	flags := cmd.Flags()

	var req domain.ReleaseNoteRequest
	req.Criteria.LabelExclude, _ = flags.GetStringArray("label-exclude")
	req.Criteria.LabelInclude, _ = flags.GetStringArray("label-include")
	req.Criteria.WordExclude, _ = flags.GetStringArray("word-exclude")
	req.Criteria.WordInclude, _ = flags.GetStringArray("word-include")

	req.Options.IncludeAuthors = settings.Output.Authors
	if flags.Changed("authors") {
		req.Options.IncludeAuthors, _ = flags.GetBool("authors")
	}
	req.Options.ShowPRNumber = settings.Output.PRNumbers
	if flags.Changed("pr-nb") {
		req.Options.ShowPRNumber, _ = flags.GetBool("pr-nb")
	}

	req.OutputDir = resolveOutputDir(settings)
	return req
}

// milestoneQuery builds a query from the milestone flags. Owner, repo and
// sort fall back to the configured defaults.
func milestoneQuery(cmd *cobra.Command, settings domain.AppSettings) (domain.MilestoneQuery, error) {
	flags := cmd.Flags()

	query := domain.MilestoneQuery{
		Owner: settings.GitHub.Owner,
		Repo:  settings.GitHub.Repo,
		Sort:  settings.GitHub.Sort,
	}
	if v, _ := flags.GetString("owner"); v != "" {
		query.Owner = v
	}
	if v, _ := flags.GetString("repo"); v != "" {
		query.Repo = v
	}
	if v, _ := flags.GetString("sort"); v != "" {
		query.Sort = v
	}
	query.Milestone, _ = flags.GetString("milestone")
	if flags.Lookup("token") != nil {
		query.Token, _ = flags.GetString("token")
	}

	if query.Owner == "" || query.Repo == "" {
		return query, fmt.Errorf("%w: --owner and --repo are required (or set github.owner and github.repo)",
			domain.ErrInvalidInput)
	}
	if query.Milestone == "" {
		return query, fmt.Errorf("%w: --milestone is required", domain.ErrInvalidInput)
	}
	return query, nil
}
