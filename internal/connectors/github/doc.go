// Package github fetches milestone pull requests and author profiles from
// the GitHub REST API.
//
// # Milestone Search
//
// Pull requests are found with the issue search endpoint:
//
//	milestone:<title> type:pr state:closed repo:<owner>/<repo> sort:<order>
//
// Milestone titles containing spaces are quoted. Results are requested 100
// per page and every page is followed until the Link header has no next
// relation. Items keep the order GitHub returned them in.
//
// The raw search payload can be written to disk as indented JSON
// (githublist.json by default) and read back later by [FileSource], so a
// release note can be regenerated without hitting the API again.
//
// # Authentication
//
// A personal access token is optional. Anonymous requests work for public
// repositories but are limited to 60 requests per hour (10 searches per
// minute); an authenticated token raises that to 5,000 per hour.
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket limits requests to about 1.2
//     per second.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset are
//     tracked from every response. When the remaining budget drops below a
//     reserve, requests wait until the reset time.
//
// # Error Handling
//
// go-github errors are converted to [APIError] and [RateLimitError]. Both
// unwrap to the matching domain sentinel (domain.ErrNotFound,
// domain.ErrAuthInvalid, domain.ErrRateLimited) so callers outside this
// package can use errors.Is.
package github
