package github

import (
	"context"
	"fmt"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure UserDirectory implements the interface.
var _ driven.AuthorDirectory = (*UserDirectory)(nil)

// UserDirectory looks up author profiles with the users API.
type UserDirectory struct {
	client *Client
}

// NewUserDirectory creates a directory backed by client.
func NewUserDirectory(client *Client) *UserDirectory {
	return &UserDirectory{client: client}
}

// Lookup returns the public profile of login, or domain.ErrNotFound for a
// deleted or unknown account.
func (d *UserDirectory) Lookup(ctx context.Context, login string) (*domain.AuthorProfile, error) {
	user, err := d.client.GetUser(ctx, login)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
		}
		return nil, err
	}

	return &domain.AuthorProfile{
		Login:    user.GetLogin(),
		Name:     user.GetName(),
		Company:  user.GetCompany(),
		Location: user.GetLocation(),
		Blog:     user.GetBlog(),
		URL:      user.GetHTMLURL(),
		Found:    true,
	}, nil
}
