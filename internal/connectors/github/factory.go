package github

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.DatasetSourceFactory = (*Factory)(nil)

// TokenResolver picks a token provider for an optional explicit token.
type TokenResolver interface {
	Resolve(explicit string) driven.TokenProvider
}

// Factory builds dataset sources backed by GitHub.
type Factory struct {
	tokens    TokenResolver
	newClient func(driven.TokenProvider) *Client
}

// NewFactory creates a factory resolving tokens through tokens.
func NewFactory(tokens TokenResolver) *Factory {
	return &Factory{tokens: tokens, newClient: NewClient}
}

// FromFile reads a previously exported search payload.
func (f *Factory) FromFile(path string) driven.DatasetSource {
	return NewFileSource(path)
}

// FromMilestone builds a source for a milestone search.
func (f *Factory) FromMilestone(_ context.Context, query domain.MilestoneQuery) (driven.DatasetSource, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return NewMilestoneSource(f.client(query.Token), query)
}

// Authors returns an author directory using the resolved token.
func (f *Factory) Authors(token string) *UserDirectory {
	return NewUserDirectory(f.client(token))
}

func (f *Factory) client(token string) *Client {
	var provider driven.TokenProvider
	if f.tokens != nil {
		provider = f.tokens.Resolve(token)
	}
	return f.newClient(provider)
}
