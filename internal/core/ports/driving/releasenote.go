package driving

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// ReleaseNoteService classifies a milestone's pull requests and renders
// the release note documents.
type ReleaseNoteService interface {
	// Generate classifies, renders, writes the documents and records
	// the run. Returns domain.ErrEmptyDataset when the source has no
	// pull requests; nothing is written in that case.
	Generate(ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest) (*domain.ReleaseNoteResult, error)

	// Preview classifies and renders without writing or recording.
	Preview(ctx context.Context, source driven.DatasetSource, req domain.ReleaseNoteRequest) (*domain.ReleaseNoteResult, error)
}
