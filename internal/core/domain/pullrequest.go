package domain

import (
	"fmt"
	"time"
)

// PullRequestRecord is a closed pull request attached to a milestone.
// Records are immutable once loaded.
type PullRequestRecord struct {
	// Title is the pull request title as shown on GitHub.
	Title string `json:"title"`

	// URL is the browser URL of the pull request.
	URL string `json:"url"`

	// Number is the pull request number within its repository.
	Number int `json:"number"`

	// Author is the login of the user who opened the pull request.
	Author string `json:"author"`

	// Labels are the label names, matched case-sensitively.
	Labels []string `json:"labels,omitempty"`

	// MergedAt is nil when the pull request was closed without merging.
	MergedAt *time.Time `json:"merged_at,omitempty"`

	// Milestone is the title of the milestone the pull request belongs to.
	Milestone string `json:"milestone,omitempty"`
}

// IsMerged reports whether the pull request was merged (not only closed).
func (r PullRequestRecord) IsMerged() bool {
	return r.MergedAt != nil
}

// HasLabel reports whether the record carries exactly the given label.
func (r PullRequestRecord) HasLabel(label string) bool {
	for _, l := range r.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Validate checks the fields every rendered document depends on.
func (r PullRequestRecord) Validate() error {
	switch {
	case r.Title == "":
		return fmt.Errorf("%w: pull request #%d has no title", ErrMalformedRecord, r.Number)
	case r.URL == "":
		return fmt.Errorf("%w: pull request #%d has no url", ErrMalformedRecord, r.Number)
	case r.Author == "":
		return fmt.Errorf("%w: pull request #%d has no author", ErrMalformedRecord, r.Number)
	}
	return nil
}

// MilestoneDataset is the ordered set of pull requests of one milestone.
type MilestoneDataset struct {
	// Title is the milestone title, used for headings and document names.
	Title string

	// PullRequests keeps the order in which the records were fetched.
	PullRequests []PullRequestRecord
}

// NewMilestoneDataset builds a dataset from fetched records.
// The milestone title is taken from the first record.
// Returns ErrEmptyDataset when there are no records and ErrMalformedRecord
// when any record lacks a required field.
func NewMilestoneDataset(records []PullRequestRecord) (*MilestoneDataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	title := records[0].Milestone
	if title == "" {
		return nil, fmt.Errorf("%w: first pull request has no milestone title", ErrMalformedRecord)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
	}

	return &MilestoneDataset{
		Title:        title,
		PullRequests: records,
	}, nil
}

// MilestoneQuery identifies the pull requests to fetch from GitHub.
type MilestoneQuery struct {
	Owner     string
	Repo      string
	Milestone string

	// Sort is one of the search sort orders (see SortOrders).
	Sort string

	// Token overrides the configured GitHub token when set.
	Token string

	// SavePath keeps the raw search payload on disk when set.
	SavePath string
}

// DefaultSortOrder is used when no sort order is given.
const DefaultSortOrder = "updated-desc"

// SortOrders returns the supported search sort orders.
func SortOrders() []string {
	return []string{
		"created-desc", "created-asc",
		"comments-desc", "comments-asc",
		"updated-desc", "updated-asc",
		"relevance-desc",
	}
}

// IsValidSortOrder reports whether s is a supported sort order.
func IsValidSortOrder(s string) bool {
	for _, o := range SortOrders() {
		if o == s {
			return true
		}
	}
	return false
}

// Validate checks that the query names a repository and milestone.
func (q MilestoneQuery) Validate() error {
	if q.Owner == "" || q.Repo == "" {
		return fmt.Errorf("%w: owner and repository are required", ErrInvalidInput)
	}
	if q.Milestone == "" {
		return fmt.Errorf("%w: milestone is required", ErrInvalidInput)
	}
	if q.Sort != "" && !IsValidSortOrder(q.Sort) {
		return fmt.Errorf("%w: %q", ErrInvalidSort, q.Sort)
	}
	return nil
}
