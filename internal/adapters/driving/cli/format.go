package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnote/internal/adapters/driven/watch"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Write the release note of an exported payload",
	Long: `Classify the pull requests of a payload saved by "relnote export" and
write the release note documents.

With --watch the documents are rewritten every time the payload changes,
until interrupted.

Examples:
  relnote format --label-exclude wontfix
  relnote format -i sprint.json --authors --watch`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringP("input", "i", defaultExportFile, "payload file to read")
	formatCmd.Flags().Bool("watch", false, "rewrite the documents when the payload changes")
	addCriteriaFlags(formatCmd.Flags())
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	if releaseNoteService == nil {
		return errors.New("release note service not configured")
	}
	if sourceFactory == nil {
		return errors.New("source factory not configured")
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = defaultExportFile
	}
	watching, _ := cmd.Flags().GetBool("watch")
	req := releaseNoteRequest(cmd, loadSettings())
	source := sourceFactory.FromFile(input)

	err := generate(cmd, source, req)
	if !watching {
		return err
	}
	if err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}

	watcher, err := watch.New(input, 0)
	if err != nil {
		return fmt.Errorf("watch %s: %w", input, err)
	}
	defer watcher.Close()

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", watcher.Path())
	for range watcher.Watch(cmd.Context()) {
		cmd.Println()
		if err := generate(cmd, source, req); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
	return nil
}
