package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound indicates the requested GitHub account or repository does not exist.
	ErrNotFound = goerr.New("not found")

	// ErrRateLimited indicates the GitHub API quota is exhausted. A retry-after
	// hint is attached as a goerr value under RetryAfterKey.
	ErrRateLimited = goerr.New("rate limited")

	// ErrNetwork indicates a transient I/O failure while calling the GitHub API.
	ErrNetwork = goerr.New("network failure")

	// ErrValidationFailed indicates malformed caller input.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrInvalidOption indicates an invalid configuration value.
	ErrInvalidOption = goerr.New("invalid option")
)

// RetryAfterKey is the goerr value key carrying the rate-limit cooldown as a
// time.Duration.
const RetryAfterKey = "retry_after"
