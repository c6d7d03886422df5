package driven

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
// Tokens are configured by the caller; scout never obtains or refreshes them.
type TokenProvider interface {
	// GetToken returns the access token.
	// Returns empty string for unauthenticated access.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method (pat, none).
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
