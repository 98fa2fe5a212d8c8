package auth

import (
	"os"
	"strings"

	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// EnvToken is the environment variable consulted for a GitHub token.
const EnvToken = "GITHUB_TOKEN"

// Token origins reported by PATProvider.Origin.
const (
	OriginFlag   = "flag"
	OriginEnv    = "env"
	OriginConfig = "config"
)

const configTokenKey = "github.token"

// Resolver picks a token provider from, in order: an explicit token,
// the GITHUB_TOKEN environment variable, and the github.token setting.
// With none of these it falls back to anonymous access.
type Resolver struct {
	config driven.ConfigStore
	getenv func(string) string
}

// NewResolver creates a resolver. config may be nil.
func NewResolver(config driven.ConfigStore) *Resolver {
	return &Resolver{config: config, getenv: os.Getenv}
}

// Resolve returns the provider for an optional explicit token.
func (r *Resolver) Resolve(explicit string) driven.TokenProvider {
	if token := strings.TrimSpace(explicit); token != "" {
		return NewPATProvider(token, OriginFlag)
	}
	if token := strings.TrimSpace(r.getenv(EnvToken)); token != "" {
		return NewPATProvider(token, OriginEnv)
	}
	if r.config != nil {
		if token := strings.TrimSpace(r.config.GetString(configTokenKey)); token != "" {
			return NewPATProvider(token, OriginConfig)
		}
	}
	return NewNullTokenProvider()
}
