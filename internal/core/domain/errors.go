package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidQuery indicates empty text or an out-of-range result limit.
	// The research call is rejected before any source is contacted.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidSearchParameters indicates a source client was called with
	// an empty query or a limit outside [1,100].
	ErrInvalidSearchParameters = errors.New("invalid search parameters")

	// ErrSourceSearchFailed indicates one source's upstream call failed.
	// Match it with errors.Is; the concrete type is *SourceSearchError.
	ErrSourceSearchFailed = errors.New("source search failed")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Authentication Errors.

	// ErrAuthRequired indicates the provider requires authentication but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// SourceSearchError wraps the failure of a single source call.
type SourceSearchError struct {
	Kind  Kind
	Cause error
}

// NewSourceSearchError wraps cause for the given source.
func NewSourceSearchError(kind Kind, cause error) *SourceSearchError {
	return &SourceSearchError{Kind: kind, Cause: cause}
}

func (e *SourceSearchError) Error() string {
	return fmt.Sprintf("%s search failed: %v", e.Kind, e.Cause)
}

// Unwrap returns the cause.
func (e *SourceSearchError) Unwrap() error {
	return e.Cause
}

// Is matches ErrSourceSearchFailed.
func (e *SourceSearchError) Is(target error) bool {
	return target == ErrSourceSearchFailed
}
