package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyDataset indicates the milestone has no pull requests.
	// It is a normal outcome: nothing is classified, rendered or written.
	ErrEmptyDataset = errors.New("no pull requests to classify")

	// ErrMalformedRecord indicates a pull request record is missing a field
	// every output depends on. The whole run fails.
	ErrMalformedRecord = errors.New("malformed pull request record")

	// ErrInvalidSort indicates an unknown search sort order.
	ErrInvalidSort = errors.New("invalid sort order")

	// Authentication Errors.

	// ErrAuthRequired indicates the operation requires authentication but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// ErrHistoryUnavailable indicates run history is disabled or not configured.
var ErrHistoryUnavailable = errors.New("run history unavailable")
