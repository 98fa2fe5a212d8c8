package services

import (
	"fmt"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// SummaryHeading is the first line of every run summary.
const SummaryHeading = "==== Final Report ===="

// Summarize turns the counters of a classification pass into report lines.
// Indented lines start with a tab.
func Summarize(c *domain.Counters) []string {
	lines := []string{
		SummaryHeading,
		fmt.Sprintf("Total number of pull requests parsed: %d", c.Parsed()),
		fmt.Sprintf("Total number of merged pull requests: %d", c.Total),
		fmt.Sprintf("Total number of pull requests added to the release note: %d", c.Regular),
	}

	includes := append(c.Family(domain.FamilyLabelInclude), c.Family(domain.FamilyWordInclude)...)
	if len(includes) > 0 {
		lines = append(lines, "\tAmong which:")
		for _, g := range includes {
			lines = append(lines, fmt.Sprintf("\t- %d pull requests with the %s '%s'",
				g.Count, g.Family.Noun(), g.DisplayKey))
		}
	}

	lines = append(lines,
		fmt.Sprintf("Total number of unique contributors: %d", c.Authors),
		fmt.Sprintf("Total number of unmerged pull requests that were ignored: %d", c.Unmerged),
	)

	excludes := append(c.Family(domain.FamilyLabelExclude), c.Family(domain.FamilyWordExclude)...)
	if len(excludes) > 0 {
		lines = append(lines, fmt.Sprintf("Total number of excluded pull requests: %d", c.Excluded()))
		for _, g := range excludes {
			lines = append(lines, fmt.Sprintf("\t- %s '%s': %d", g.Family.Noun(), g.DisplayKey, g.Count))
		}
	}

	return lines
}
