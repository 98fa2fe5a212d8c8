package driven

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// AuthorDirectory looks up public profiles of pull request authors.
type AuthorDirectory interface {
	// Lookup returns the profile for a login.
	// Returns domain.ErrNotFound if the account does not exist.
	Lookup(ctx context.Context, login string) (*domain.AuthorProfile, error)
}
