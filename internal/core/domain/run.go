package domain

import "time"

// Run records one release note generation.
type Run struct {
	// ID is the unique identifier for the run.
	ID string `json:"id"`

	// Milestone is the milestone title the run was generated for.
	Milestone string `json:"milestone"`

	// Source describes where the pull requests came from.
	Source string `json:"source"`

	// Counters are the tallies of the classification pass.
	Counters Counters `json:"counters"`

	// Documents are the paths of the written documents.
	Documents []string `json:"documents"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at"`
}

// ReleaseNoteRequest describes one release note generation.
type ReleaseNoteRequest struct {
	Criteria CriteriaInput
	Options  RenderOptions

	// OutputDir is where documents are written. Empty means the
	// working directory.
	OutputDir string
}

// ReleaseNoteResult is the outcome of a generation or preview.
type ReleaseNoteResult struct {
	// RunID is empty for previews and when history is disabled.
	RunID     string
	Milestone string
	Partition *Partition
	Counters  *Counters
	Summary   []string
	Documents []Document

	// Written holds the paths of written documents, in Documents order.
	Written []string
}

// AuthorsResult is the outcome of a contributor profile lookup.
type AuthorsResult struct {
	Milestone string
	Profiles  []AuthorProfile
	Document  Document

	// Written is the path of the written document, empty for previews.
	Written string
}
