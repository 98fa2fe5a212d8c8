package github

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// BuildMilestoneQuery returns the issue search query for the closed pull
// requests of a milestone. Milestones containing spaces are quoted.
func BuildMilestoneQuery(q domain.MilestoneQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	sort := q.Sort
	if sort == "" {
		sort = domain.DefaultSortOrder
	}

	milestone := strings.TrimSpace(q.Milestone)
	if strings.Contains(milestone, " ") {
		milestone = `"` + milestone + `"`
	}

	return fmt.Sprintf("milestone:%s type:pr state:closed repo:%s/%s sort:%s",
		milestone, q.Owner, q.Repo, sort), nil
}
