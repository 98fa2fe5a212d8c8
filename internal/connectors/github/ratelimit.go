package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/relnote/internal/logger"
)

const (
	// GitHubRateLimit is the authenticated core rate limit (5000/hour).
	GitHubRateLimit = 5000

	// SearchRateLimit is the authenticated search rate limit (30/minute).
	SearchRateLimit = 30

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec).
	ProactiveRate = 1.2

	// MinBuffer is the core reserve kept before waiting for reset.
	MinBuffer = 100

	// SearchMinBuffer is the search reserve kept before waiting for reset.
	SearchMinBuffer = 2

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"

	// HeaderRateResource names the quota a response was counted against.
	HeaderRateResource = "X-RateLimit-Resource"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// Quota resources reported in X-RateLimit-Resource.
const (
	ResourceCore   = "core"
	ResourceSearch = "search"
)

// quota is the last known state of one GitHub rate limit resource.
type quota struct {
	remaining int
	limit     int
	resetTime time.Time
	minBuffer int
}

// RateLimiter implements dual-strategy rate limiting for the GitHub API.
// Core and search requests are counted against separate quotas.
type RateLimiter struct {
	mu     sync.Mutex
	quotas map[string]*quota
	bucket *rate.Limiter // Proactive throttling
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithRate(rate.Limit(ProactiveRate))
}

// NewRateLimiterWithRate creates a rate limiter with a custom proactive
// rate. rate.Inf disables proactive throttling.
func NewRateLimiterWithRate(r rate.Limit) *RateLimiter {
	return &RateLimiter{
		quotas: map[string]*quota{
			ResourceCore:   {remaining: GitHubRateLimit, limit: GitHubRateLimit, minBuffer: MinBuffer},
			ResourceSearch: {remaining: SearchRateLimit, limit: SearchRateLimit, minBuffer: SearchMinBuffer},
		},
		bucket: rate.NewLimiter(r, 1),
	}
}

// Wait blocks until it's safe to make a request against resource.
// It uses both proactive throttling and reactive API limit checking.
func (r *RateLimiter) Wait(ctx context.Context, resource string) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	q := r.quota(resource)
	remaining, resetTime, minBuffer := q.remaining, q.resetTime, q.minBuffer
	r.mu.Unlock()

	if remaining >= minBuffer || !time.Now().Before(resetTime) {
		return nil
	}

	logger.Warn("GitHub %s quota nearly exhausted (%d left), waiting until %s",
		resource, remaining, resetTime.Format(time.Kitchen))
	timer := time.NewTimer(time.Until(resetTime))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UpdateFromResponse updates rate limit state from response headers.
// Responses without X-RateLimit-Resource count against core.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	resource := resp.Header.Get(HeaderRateResource)
	if resource == "" {
		resource = ResourceCore
	}
	q := r.quota(resource)

	if val, err := strconv.Atoi(resp.Header.Get(HeaderRateRemaining)); err == nil {
		q.remaining = val
	}
	if val, err := strconv.Atoi(resp.Header.Get(HeaderRateLimit)); err == nil {
		q.limit = val
	}
	if val, err := strconv.ParseInt(resp.Header.Get(HeaderRateReset), 10, 64); err == nil {
		q.resetTime = time.Unix(val, 0)
	}
}

// CheckRateLimit records the response headers and returns a
// RateLimitError when the response is a rate limit rejection.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	r.UpdateFromResponse(resp)

	resource := resp.Header.Get(HeaderRateResource)
	if resource == "" {
		resource = ResourceCore
	}

	r.mu.Lock()
	q := *r.quota(resource)
	r.mu.Unlock()

	if resp.StatusCode != http.StatusTooManyRequests &&
		(resp.StatusCode != http.StatusForbidden || q.remaining != 0) {
		return nil
	}

	resetAt := q.resetTime
	if seconds, err := strconv.Atoi(resp.Header.Get(HeaderRetryAfter)); err == nil {
		resetAt = time.Now().Add(time.Duration(seconds) * time.Second)
	}
	return &RateLimitError{ResetAt: resetAt, Remaining: q.remaining, Limit: q.limit}
}

// Remaining returns the remaining requests for resource.
func (r *RateLimiter) Remaining(resource string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota(resource).remaining
}

// Limit returns the rate limit for resource.
func (r *RateLimiter) Limit(resource string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota(resource).limit
}

// ResetTime returns the reset time for resource.
func (r *RateLimiter) ResetTime(resource string) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota(resource).resetTime
}

// quota returns the state for resource, creating it on first use
// (caller must hold lock).
func (r *RateLimiter) quota(resource string) *quota {
	q, ok := r.quotas[resource]
	if !ok {
		q = &quota{remaining: GitHubRateLimit, limit: GitHubRateLimit, minBuffer: MinBuffer}
		r.quotas[resource] = q
	}
	return q
}
