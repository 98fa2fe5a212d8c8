package github

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// RecordFromIssue converts a search hit into a pull request record.
// MergedAt is nil unless the pull request was merged.
func RecordFromIssue(issue *gh.Issue) domain.PullRequestRecord {
	record := domain.PullRequestRecord{
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		Number:    issue.GetNumber(),
		Author:    issue.GetUser().GetLogin(),
		Milestone: issue.GetMilestone().GetTitle(),
	}

	for _, label := range issue.Labels {
		if name := label.GetName(); name != "" {
			record.Labels = append(record.Labels, name)
		}
	}

	if links := issue.GetPullRequestLinks(); links != nil && links.MergedAt != nil {
		merged := links.MergedAt.Time
		record.MergedAt = &merged
	}
	return record
}

// RecordsFromIssues converts search hits in order. Nil entries are skipped.
func RecordsFromIssues(issues []*gh.Issue) []domain.PullRequestRecord {
	records := make([]domain.PullRequestRecord, 0, len(issues))
	for _, issue := range issues {
		if issue == nil {
			continue
		}
		records = append(records, RecordFromIssue(issue))
	}
	return records
}
