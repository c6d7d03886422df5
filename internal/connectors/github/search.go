package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Search limits enforced before any request is sent.
const (
	MinSearchLimit = 1
	MaxSearchLimit = 100
)

// validateSearch checks the arguments shared by every search method.
func validateSearch(query string, limit int) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query is empty", domain.ErrInvalidSearchParameters)
	}
	if limit < MinSearchLimit || limit > MaxSearchLimit {
		return fmt.Errorf("%w: limit %d outside [%d,%d]",
			domain.ErrInvalidSearchParameters, limit, MinSearchLimit, MaxSearchLimit)
	}
	return nil
}

// ComposeQuery builds a search string from the base text, an optional
// language filter and extra qualifiers.
func ComposeQuery(query, language string, qualifiers ...string) string {
	parts := []string{strings.TrimSpace(query)}
	if language = strings.TrimSpace(language); language != "" {
		parts = append(parts, "language:"+strings.ToLower(language))
	}
	parts = append(parts, qualifiers...)
	return strings.Join(parts, " ")
}

func searchOptions(limit int) *gh.SearchOptions {
	return &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: limit}}
}

// SearchCode implements driven.SourceClient.
func (c *Client) SearchCode(ctx context.Context, query, language string, limit int) ([]domain.CodeItem, error) {
	if err := validateSearch(query, limit); err != nil {
		return nil, err
	}

	var result *gh.CodeSearchResult
	err := c.do(ctx, domain.KindCode, "search code", func(client *gh.Client) (*gh.Response, error) {
		var resp *gh.Response
		var err error
		result, resp, err = client.Search.Code(ctx, ComposeQuery(query, language), searchOptions(limit))
		return resp, err
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.CodeItem, 0, len(result.CodeResults))
	for _, r := range result.CodeResults {
		items = append(items, toCodeItem(r))
	}
	return truncate(items, limit), nil
}

// SearchRepositories implements driven.SourceClient.
func (c *Client) SearchRepositories(
	ctx context.Context, query, language string, limit int,
) ([]domain.RepositoryItem, error) {
	if err := validateSearch(query, limit); err != nil {
		return nil, err
	}

	var result *gh.RepositoriesSearchResult
	err := c.do(ctx, domain.KindRepository, "search repositories", func(client *gh.Client) (*gh.Response, error) {
		var resp *gh.Response
		var err error
		result, resp, err = client.Search.Repositories(ctx, ComposeQuery(query, language), searchOptions(limit))
		return resp, err
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.RepositoryItem, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		items = append(items, toRepositoryItem(r))
	}
	return truncate(items, limit), nil
}

// SearchIssues implements driven.SourceClient.
func (c *Client) SearchIssues(ctx context.Context, query, language string, limit int) ([]domain.IssueItem, error) {
	if err := validateSearch(query, limit); err != nil {
		return nil, err
	}
	return c.searchIssues(ctx, domain.KindIssue, ComposeQuery(query, language, "is:issue"), limit)
}

func (c *Client) searchIssues(ctx context.Context, kind domain.Kind, q string, limit int) ([]domain.IssueItem, error) {
	var result *gh.IssuesSearchResult
	err := c.do(ctx, kind, "search issues", func(client *gh.Client) (*gh.Response, error) {
		var resp *gh.Response
		var err error
		result, resp, err = client.Search.Issues(ctx, q, searchOptions(limit))
		return resp, err
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.IssueItem, 0, len(result.Issues))
	for _, i := range result.Issues {
		items = append(items, toIssueItem(i))
	}
	return truncate(items, limit), nil
}

func toCodeItem(r *gh.CodeResult) domain.CodeItem {
	item := domain.CodeItem{
		FileName: r.GetName(),
		Path:     r.GetPath(),
		URL:      r.GetHTMLURL(),
	}
	if repo := r.GetRepository(); repo != nil {
		item.Repository = repo.GetFullName()
		item.Stars = repo.GetStargazersCount()
		item.UpdatedAt = repo.GetUpdatedAt().Time
	}
	return item
}

func toRepositoryItem(r *gh.Repository) domain.RepositoryItem {
	return domain.RepositoryItem{
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		UpdatedAt:   r.GetUpdatedAt().Time,
		URL:         r.GetHTMLURL(),
	}
}

func toIssueItem(i *gh.Issue) domain.IssueItem {
	item := domain.IssueItem{
		Number:     i.GetNumber(),
		Title:      i.GetTitle(),
		Body:       i.GetBody(),
		State:      i.GetState(),
		Repository: repoFromAPIURL(i.GetRepositoryURL()),
		Reactions:  i.GetReactions().GetTotalCount(),
		Comments:   i.GetComments(),
		CreatedAt:  i.GetCreatedAt().Time,
		UpdatedAt:  i.GetUpdatedAt().Time,
		URL:        i.GetHTMLURL(),
	}
	if repo := i.GetRepository(); repo != nil && repo.GetFullName() != "" {
		item.Repository = repo.GetFullName()
	}
	return item
}

// repoFromAPIURL extracts "owner/repo" from an API repository URL such as
// https://api.github.com/repos/owner/repo.
func repoFromAPIURL(u string) string {
	idx := strings.LastIndex(u, "/repos/")
	if idx < 0 {
		return ""
	}
	return strings.Trim(u[idx+len("/repos/"):], "/")
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
