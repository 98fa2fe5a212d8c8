package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch a milestone and write its release note",
	Long: `Fetch the closed pull requests of a milestone from GitHub, classify them
and write the release note documents.

Examples:
  relnote generate -o acme -r widgets -m v2.3.0
  relnote generate -m v2.3.0 --label-exclude wontfix --label-include bug,fix
  relnote generate -m "Sprint 12" --word-include docs,documentation --pr-nb --save`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addMilestoneFlags(generateCmd.Flags(), true)
	addCriteriaFlags(generateCmd.Flags())
	generateCmd.Flags().Bool("save", false, "keep the search payload in "+defaultExportFile)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if releaseNoteService == nil {
		return errors.New("release note service not configured")
	}
	if sourceFactory == nil {
		return errors.New("source factory not configured")
	}

	settings := loadSettings()
	query, err := milestoneQuery(cmd, settings)
	if err != nil {
		return err
	}
	if save, _ := cmd.Flags().GetBool("save"); save {
		query.SavePath = defaultExportFile
	}

	source, err := sourceFactory.FromMilestone(cmd.Context(), query)
	if err != nil {
		return err
	}
	return generate(cmd, source, releaseNoteRequest(cmd, settings))
}
