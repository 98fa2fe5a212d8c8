package domain

// DocumentKind identifies what a rendered document contains.
type DocumentKind string

const (
	// DocumentReleaseNote is the main release note with include subsections.
	DocumentReleaseNote DocumentKind = "release_note"

	// DocumentAuthors lists the contributors of the milestone.
	DocumentAuthors DocumentKind = "authors"

	// DocumentExclusion lists the pull requests of one exclusion group.
	DocumentExclusion DocumentKind = "exclusion"

	// DocumentContributors lists contributor profiles fetched from GitHub.
	DocumentContributors DocumentKind = "contributors"
)

// Document is a rendered Markdown document.
// Name is a logical name without directory or extension; the persistence
// adapter decides the final path.
type Document struct {
	Name    string       `json:"name"`
	Kind    DocumentKind `json:"kind"`
	Content string       `json:"content"`
}

// RenderOptions are the rendering toggles. They have no effect on
// classification.
type RenderOptions struct {
	// IncludeAuthors adds the contributors document.
	IncludeAuthors bool `json:"include_authors"`

	// ShowPRNumber adds the pull request number to each link.
	ShowPRNumber bool `json:"show_pr_number"`
}
