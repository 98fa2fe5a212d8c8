// Package cli implements the relnote command line.
//
// Services are injected by main through SetServices; every command
// reports an error when the service it needs is missing.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/core/ports/driving"
	"github.com/custodia-labs/relnote/internal/logger"
)

var version = "dev"

var (
	releaseNoteService driving.ReleaseNoteService
	authorService      driving.AuthorService
	historyService     driving.HistoryService
	settingsService    driving.SettingsService
	sourceFactory      driven.DatasetSourceFactory
)

// Services holds the services used by the commands.
type Services struct {
	ReleaseNote driving.ReleaseNoteService
	Authors     driving.AuthorService
	History     driving.HistoryService
	Settings    driving.SettingsService
	Sources     driven.DatasetSourceFactory
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	releaseNoteService = s.ReleaseNote
	authorService = s.Authors
	historyService = s.History
	settingsService = s.Settings
	sourceFactory = s.Sources
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var (
	verbose   bool
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "relnote",
	Short: "Build release notes from a GitHub milestone",
	Long: `relnote fetches the closed pull requests of a GitHub milestone and
turns them into Markdown release notes.

Pull requests are sorted with label and title-word criteria: excluded
groups get a document of their own, included groups get a section of the
release note, and everything else lands in the main list.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory documents are written to (default from config)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
