package driven

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// DocumentWriter persists rendered documents.
// Implementations choose the final path and extension and apply any
// filename policy beyond what the renderer already stripped.
type DocumentWriter interface {
	// Write stores the document under dir and returns its location.
	Write(ctx context.Context, dir string, doc domain.Document) (string, error)
}
