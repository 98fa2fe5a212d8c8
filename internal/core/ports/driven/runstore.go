package driven

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// RunStore persists the history of release note generations.
type RunStore interface {
	// Save records a run.
	Save(ctx context.Context, run *domain.Run) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns up to limit runs, newest first. A limit of zero or
	// less returns every run.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Close releases the underlying resources.
	Close() error
}
