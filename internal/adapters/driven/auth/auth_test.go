package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnote/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relnote/internal/core/domain"
)

func TestNullTokenProvider(t *testing.T) {
	p := NewNullTokenProvider()

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, domain.AuthMethodNone, p.AuthMethod())
	assert.False(t, p.IsAuthenticated())
}

func TestPATProvider(t *testing.T) {
	p := NewPATProvider("  ghp_abc \n", OriginFlag)

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", token)
	assert.Equal(t, domain.AuthMethodPAT, p.AuthMethod())
	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, OriginFlag, p.Origin())
}

func TestPATProvider_Blank(t *testing.T) {
	p := NewPATProvider("   ", OriginConfig)

	_, err := p.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.False(t, p.IsAuthenticated())
}

func newTestResolver(env string, config map[string]any) *Resolver {
	r := NewResolver(memory.NewConfigStore(config))
	r.getenv = func(key string) string {
		if key == EnvToken {
			return env
		}
		return ""
	}
	return r
}

func TestResolver_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		config   map[string]any
		want     string
		origin   string
	}{
		{"flag wins", "from-flag", "from-env", map[string]any{"github.token": "from-config"}, "from-flag", OriginFlag},
		{"env before config", "", "from-env", map[string]any{"github.token": "from-config"}, "from-env", OriginEnv},
		{"config last", "", "", map[string]any{"github.token": "from-config"}, "from-config", OriginConfig},
		{"blank flag ignored", "   ", "from-env", nil, "from-env", OriginEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestResolver(tt.env, tt.config).Resolve(tt.explicit)

			pat, ok := p.(*PATProvider)
			require.True(t, ok)
			token, err := pat.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
			assert.Equal(t, tt.origin, pat.Origin())
		})
	}
}

func TestResolver_Anonymous(t *testing.T) {
	p := newTestResolver("", nil).Resolve("")

	assert.Equal(t, domain.AuthMethodNone, p.AuthMethod())
}

func TestResolver_NilConfig(t *testing.T) {
	r := NewResolver(nil)
	r.getenv = func(string) string { return "" }

	assert.IsType(t, &NullTokenProvider{}, r.Resolve(""))
}
