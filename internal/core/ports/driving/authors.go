package driving

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// AuthorService retrieves contributor profiles for a milestone.
type AuthorService interface {
	// Profiles looks up every distinct author of the source's pull
	// requests once, in first-seen order, and writes the contributors
	// document to outputDir. An empty outputDir skips writing.
	Profiles(ctx context.Context, source driven.DatasetSource, outputDir string) (*domain.AuthorsResult, error)
}
