package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSummary prints the run summary. Lines starting with "=" are
// headings and are styled on a terminal.
func printSummary(cmd *cobra.Command, lines []string) {
	styled := isTerminal(cmd.OutOrStdout())
	for _, line := range lines {
		if styled && strings.HasPrefix(line, "=") {
			line = headingStyle.Render(line)
		}
		cmd.Println(line)
	}
}

// emptyMessage is printed when a source yields no pull requests.
func emptyMessage(source driven.DatasetSource) string {
	return "No pull requests to parse in " + source.Describe()
}

// generate runs the release note service and prints the outcome.
// An empty source is reported, not treated as a failure.
func generate(cmd *cobra.Command, source driven.DatasetSource, req domain.ReleaseNoteRequest) error {
	result, err := releaseNoteService.Generate(cmd.Context(), source, req)
	if errors.Is(err, domain.ErrEmptyDataset) {
		cmd.Println(emptyMessage(source))
		return nil
	}
	if err != nil {
		return err
	}

	printSummary(cmd, result.Summary)
	cmd.Println()
	for _, path := range result.Written {
		cmd.Printf("Wrote %s\n", path)
	}
	if result.RunID != "" {
		cmd.Printf("Run %s recorded\n", result.RunID)
	}
	return nil
}

// maskToken hides all but the first and last four characters.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
