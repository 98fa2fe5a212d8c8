package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past release note runs",
	Long: `List the recorded release note runs, newest first.

Runs are recorded by "generate" and "format" unless history.enabled is
set to false.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if errors.Is(err, domain.ErrHistoryUnavailable) {
		cmd.Println("Run history is disabled.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if historyJSON {
		if runs == nil {
			runs = []domain.Run{}
		}
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode runs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Printf("Runs (%d):\n\n", len(runs))
	for _, run := range runs {
		cmd.Printf("  %s  %s\n", run.CreatedAt.Local().Format(time.DateTime), run.Milestone)
		cmd.Printf("    ID: %s\n", run.ID)
		cmd.Printf("    Source: %s\n", run.Source)
		cmd.Printf("    Merged: %d, release note: %d, excluded: %d, unmerged: %d\n",
			run.Counters.Total, run.Counters.Regular, run.Counters.Excluded(), run.Counters.Unmerged)
		if len(run.Documents) > 0 {
			cmd.Printf("    Documents: %d\n", len(run.Documents))
		}
		cmd.Println()
	}
	return nil
}
