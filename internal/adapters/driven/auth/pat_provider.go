package auth

import (
	"context"
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure PATProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*PATProvider)(nil)

// PATProvider provides a static personal access token.
// PATs don't expire and don't require refresh.
type PATProvider struct {
	token  string
	origin string
}

// NewPATProvider creates a token provider for a personal access token.
// origin names where the token came from (flag, env, config).
func NewPATProvider(token, origin string) *PATProvider {
	return &PATProvider{token: strings.TrimSpace(token), origin: origin}
}

// GetToken returns the token, or ErrAuthRequired when it is blank.
func (p *PATProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodPAT.
func (p *PATProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPAT
}

// IsAuthenticated returns true if the token is non-empty.
func (p *PATProvider) IsAuthenticated() bool {
	return p.token != ""
}

// Origin returns where the token was read from.
func (p *PATProvider) Origin() string {
	return p.origin
}
