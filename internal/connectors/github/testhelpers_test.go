package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/relnote/internal/core/domain"
)

// mockTokenProvider implements driven.TokenProvider for testing.
type mockTokenProvider struct {
	token string
	err   error
}

func (p *mockTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

func (p *mockTokenProvider) AuthMethod() domain.AuthMethod {
	if p.token == "" {
		return domain.AuthMethodNone
	}
	return domain.AuthMethodPAT
}

func (p *mockTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}

// newTestClient starts an httptest server with handler and returns an
// unthrottled client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClientWithHTTPClient(srv.Client(), srv.URL, NewRateLimiterWithRate(rate.Inf))
	require.NoError(t, err)
	return client, srv
}

const searchPage1 = `{
  "total_count": 3,
  "incomplete_results": false,
  "items": [
    {
      "number": 12,
      "title": "Fix crash on empty config",
      "html_url": "https://github.com/acme/widgets/pull/12",
      "user": {"login": "alice"},
      "labels": [{"name": "bug"}, {"name": "backport"}],
      "milestone": {"title": "v2.3.0"},
      "pull_request": {"merged_at": "2024-03-01T10:00:00Z"}
    },
    {
      "number": 13,
      "title": "Abandoned attempt",
      "html_url": "https://github.com/acme/widgets/pull/13",
      "user": {"login": "bob"},
      "labels": [],
      "milestone": {"title": "v2.3.0"},
      "pull_request": {"merged_at": null}
    }
  ]
}`

const searchPage2 = `{
  "total_count": 3,
  "incomplete_results": false,
  "items": [
    {
      "number": 14,
      "title": "Add docs for widgets",
      "html_url": "https://github.com/acme/widgets/pull/14",
      "user": {"login": "Carol"},
      "milestone": {"title": "v2.3.0"},
      "pull_request": {"merged_at": "2024-03-02T10:00:00Z"}
    }
  ]
}`
