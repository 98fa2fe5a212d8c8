package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Look up the contributors of a milestone",
	Long: `Fetch the GitHub profile of every author of a milestone's merged pull
requests and write a contributors document.

The pull requests come from a saved payload (-i) or from a milestone
search (-m). Without either, githublist.json is read.

Examples:
  relnote authors -i githublist.json
  relnote authors -o acme -r widgets -m v2.3.0`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().StringP("input", "i", "", "payload file to read (default "+defaultExportFile+")")
	addMilestoneFlags(authorsCmd.Flags(), false)
	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, _ []string) error {
	if authorService == nil {
		return errors.New("author service not configured")
	}
	if sourceFactory == nil {
		return errors.New("source factory not configured")
	}

	settings := loadSettings()
	source, err := authorsSource(cmd, settings)
	if err != nil {
		return err
	}

	result, err := authorService.Profiles(cmd.Context(), source, resolveOutputDir(settings))
	if errors.Is(err, domain.ErrEmptyDataset) {
		cmd.Println(emptyMessage(source))
		return nil
	}
	if err != nil {
		return err
	}

	cmd.Printf("Contributors of %s: %d\n", result.Milestone, len(result.Profiles))
	for _, p := range result.Profiles {
		switch {
		case !p.Found:
			cmd.Printf("  - @%s (no profile)\n", p.Login)
		case p.Company != "":
			cmd.Printf("  - %s (@%s), %s\n", p.DisplayName(), p.Login, p.Company)
		default:
			cmd.Printf("  - %s (@%s)\n", p.DisplayName(), p.Login)
		}
	}
	if result.Written != "" {
		cmd.Printf("Wrote %s\n", result.Written)
	}
	return nil
}

func authorsSource(cmd *cobra.Command, settings domain.AppSettings) (driven.DatasetSource, error) {
	input, _ := cmd.Flags().GetString("input")
	milestone, _ := cmd.Flags().GetString("milestone")
	if input != "" || milestone == "" {
		return sourceFactory.FromFile(input), nil
	}

	query, err := milestoneQuery(cmd, settings)
	if err != nil {
		return nil, err
	}
	return sourceFactory.FromMilestone(cmd.Context(), query)
}
