package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/relnote/internal/core/ports/driven"
	"github.com/custodia-labs/relnote/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PerPage is the page size requested from the search API.
	PerPage = 100
)

// Client wraps the go-github client with rate limiting and error mapping.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a new GitHub API client with a token provider.
// The underlying HTTP client is built on first use.
func NewClient(tokenProvider driven.TokenProvider) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a client that sends requests through
// httpClient to baseURL. An empty baseURL uses api.github.com.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, limiter *RateLimiter) (*Client, error) {
	client := gh.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		client.BaseURL = u
	}
	if limiter == nil {
		limiter = NewRateLimiter()
	}
	return &Client{gh: client, rateLimiter: limiter}, nil
}

// ensureClient initializes the go-github client if not already done.
// An empty token yields an anonymous client.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}

	var token string
	if c.tokenProvider != nil {
		t, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		token = t
	}

	if token == "" {
		logger.Debug("Using anonymous GitHub access")
		c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
		return nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.gh = gh.NewClient(tc)
	return nil
}

// SearchMilestonePulls runs an issue search and follows every result
// page, concatenating items in the order GitHub returned them.
func (c *Client) SearchMilestonePulls(ctx context.Context, query string) (*gh.IssuesSearchResult, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	result := &gh.IssuesSearchResult{Issues: []*gh.Issue{}}
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: PerPage}}
	incomplete := false

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := c.rateLimiter.Wait(ctx, ResourceSearch); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		logger.Debug("Searching %q (page %d)", query, page)
		found, resp, err := c.gh.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, c.wrapError(err, resp, "search issues")
		}
		c.updateRateLimitFromResponse(resp)

		if result.Total == nil {
			result.Total = found.Total
		}
		incomplete = incomplete || found.GetIncompleteResults()
		result.Issues = append(result.Issues, found.Issues...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if incomplete {
		logger.Warn("GitHub reported incomplete search results for %q", query)
	}
	result.IncompleteResults = gh.Ptr(incomplete)
	return result, nil
}

// GetUser fetches the public profile of login.
func (c *Client) GetUser(ctx context.Context, login string) (*gh.User, error) {
	if login == "" {
		return nil, ErrEmptyLogin
	}
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx, ResourceCore); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	user, resp, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return nil, c.wrapError(err, resp, "get user")
	}

	c.updateRateLimitFromResponse(resp)
	return user, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// TokenProvider returns the token provider, nil for clients built with
// NewClientWithHTTPClient.
func (c *Client) TokenProvider() driven.TokenProvider {
	return c.tokenProvider
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, resp *gh.Response, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Now().Add(time.Minute)
		if d := abuseErr.GetRetryAfter(); d > 0 {
			resetAt = time.Now().Add(d)
		}
		return &RateLimitError{ResetAt: resetAt}
	}

	if resp != nil && resp.Response != nil {
		if rlErr := c.rateLimiter.CheckRateLimit(resp.Response); rlErr != nil {
			return rlErr
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
