package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a milestone's pull requests as JSON",
	Long: `Fetch the closed pull requests of a milestone and save the raw search
payload, to be formatted later with "relnote format".

Examples:
  relnote export -o acme -r widgets -m v2.3.0
  relnote export -m v2.3.0 --output sprint.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addMilestoneFlags(exportCmd.Flags(), true)
	exportCmd.Flags().String("output", defaultExportFile, "file the payload is written to")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if sourceFactory == nil {
		return errors.New("source factory not configured")
	}

	query, err := milestoneQuery(cmd, loadSettings())
	if err != nil {
		return err
	}
	query.SavePath, _ = cmd.Flags().GetString("output")
	if query.SavePath == "" {
		query.SavePath = defaultExportFile
	}

	source, err := sourceFactory.FromMilestone(cmd.Context(), query)
	if err != nil {
		return err
	}
	records, err := source.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("export %s: %w", source.Describe(), err)
	}

	cmd.Printf("Exported %d pull requests from %s to %s\n", len(records), source.Describe(), query.SavePath)
	return nil
}
