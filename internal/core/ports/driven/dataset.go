package driven

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// DatasetSource supplies the closed pull requests of one milestone.
// Implementations own fetching, pagination, authentication and retries.
// Returning zero records is a valid result.
type DatasetSource interface {
	// Fetch returns the pull request records in source order.
	Fetch(ctx context.Context) ([]domain.PullRequestRecord, error)

	// Describe returns a short human-readable name for the source,
	// e.g. "acme/widget milestone v1.0" or "githublist.json".
	Describe() string
}

// DatasetSourceFactory builds dataset sources.
type DatasetSourceFactory interface {
	// FromFile reads a previously exported search payload.
	FromFile(path string) DatasetSource

	// FromMilestone queries GitHub for a milestone's closed pull requests.
	FromMilestone(ctx context.Context, query domain.MilestoneQuery) (DatasetSource, error)
}
