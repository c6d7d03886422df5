package github

import (
	"context"
	"fmt"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// DiscussionMinComments is the comment floor that makes an issue count as
// a discussion thread in the fallback search.
const DiscussionMinComments = 3

// Ensure Client implements the interface.
var _ driven.DiscussionSearcher = (*Client)(nil)

// SearchDiscussions implements driven.DiscussionSearcher.
//
// The REST search API has no discussion endpoint, so this searches issues
// with at least DiscussionMinComments comments and flags every item with
// ViaIssueFallback. Failures are reported for domain.KindDiscussion.
func (c *Client) SearchDiscussions(
	ctx context.Context, query, language string, limit int,
) ([]domain.IssueItem, error) {
	if err := validateSearch(query, limit); err != nil {
		return nil, err
	}

	q := ComposeQuery(query, language, "is:issue", fmt.Sprintf("comments:>=%d", DiscussionMinComments))
	items, err := c.searchIssues(ctx, domain.KindDiscussion, q, limit)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ViaIssueFallback = true
	}
	return items, nil
}
