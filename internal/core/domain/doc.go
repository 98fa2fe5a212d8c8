// Package domain defines the core business entities for relnote.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PullRequestRecord: A closed pull request as fetched for a milestone
//   - MilestoneDataset: The ordered pull requests of one milestone
//   - CriterionGroup: An operator-supplied label or title-word rule
//   - Partition: The buckets produced by one classification pass
//   - Counters: Per-bucket and overall tallies of a classification pass
//   - Document: A rendered Markdown document ready for persistence
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
