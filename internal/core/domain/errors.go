package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by the content API adapter.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingToken indicates no management API token is configured.
	// Detected before any remote call is attempted.
	ErrMissingToken = errors.New("management token missing")

	// ErrMissingSpace indicates a space ID was not provided.
	// Detected before any remote call is attempted.
	ErrMissingSpace = errors.New("space ID missing")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown resource kind.
	ErrUnsupportedKind = errors.New("unsupported resource kind")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotRunning indicates no external process is tracked by a handle.
	ErrNotRunning = errors.New("no process running")
)
