package auth

import (
	"context"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider sends anonymous GitHub requests.
type NullTokenProvider struct{}

// NewNullTokenProvider creates an anonymous token provider.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken returns an empty string.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// AuthMethod returns AuthMethodNone.
func (p *NullTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodNone
}

// IsAuthenticated returns false; anonymous requests are heavily rate limited.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return false
}
