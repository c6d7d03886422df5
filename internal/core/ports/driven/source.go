package driven

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// DiscussionSearcher searches discussion threads.
//
// The upstream provider has no native discussion search, so the GitHub
// adapter serves it from the issue endpoint and flags every item with
// ViaIssueFallback. A native implementation can replace it without touching
// the orchestrator.
type DiscussionSearcher interface {
	SearchDiscussions(ctx context.Context, query, language string, limit int) ([]domain.IssueItem, error)
}

// SourceClient searches the code, repository, issue and discussion corpora
// of one provider.
//
// Every method validates its arguments before any network call: query must
// be non-empty and limit within [1,100], otherwise the error wraps
// domain.ErrInvalidSearchParameters. Upstream failures are returned as
// *domain.SourceSearchError. Implementations never retry.
type SourceClient interface {
	DiscussionSearcher

	// SearchCode searches file contents and paths.
	SearchCode(ctx context.Context, query, language string, limit int) ([]domain.CodeItem, error)

	// SearchRepositories searches repository names and descriptions.
	SearchRepositories(ctx context.Context, query, language string, limit int) ([]domain.RepositoryItem, error)

	// SearchIssues searches issues.
	SearchIssues(ctx context.Context, query, language string, limit int) ([]domain.IssueItem, error)
}
