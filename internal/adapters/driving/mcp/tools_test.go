package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestServer_handleResearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked results and summary", func(t *testing.T) {
		svc := &mockResearchService{report: testReport("r1")}
		server, err := NewServer(&Ports{Research: svc})
		require.NoError(t, err)

		result, output, err := server.handleResearch(ctx, nil, ResearchInput{Question: "react useeffect cleanup example"})

		require.NoError(t, err)
		assert.Equal(t, "r1", output.ID)
		assert.Equal(t, "implementation", output.Strategy)
		assert.Equal(t, []string{"code", "repository"}, output.Sources)
		assert.Equal(t, 1, output.Total)
		require.Len(t, output.Results, 1)
		assert.Equal(t, ResultOutput{
			Kind:      "repository",
			Name:      "acme/use-effect-cleanup",
			Location:  "acme/use-effect-cleanup",
			URL:       "https://github.com/acme/use-effect-cleanup",
			Score:     0.8579,
			Stars:     4200,
			UpdatedAt: "2025-05-30T00:00:00Z",
		}, output.Results[0])
		assert.Equal(t, []string{"1 popular repository (> 1000 stars)"}, output.Findings)
		assert.False(t, output.Complete)
		assert.Equal(t, []FailureOutput{{Kind: "code", Error: "rate limited"}}, output.Failures)
		assert.Contains(t, output.Summary, "Research: react useeffect cleanup example")

		require.NotNil(t, result)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, output.Summary, text.Text)
	})

	t.Run("fills defaults", func(t *testing.T) {
		svc := &mockResearchService{report: testReport("r1")}
		server, err := NewServer(&Ports{Research: svc, Defaults: domain.Query{MaxResults: 7}})
		require.NoError(t, err)

		_, _, err = server.handleResearch(ctx, nil, ResearchInput{Question: "q"})

		require.NoError(t, err)
		assert.Equal(t, domain.Query{Text: "q", Type: domain.SourceTypeAll, SortBy: domain.SortRelevance, MaxResults: 7}, svc.got)
	})

	t.Run("input overrides defaults", func(t *testing.T) {
		svc := &mockResearchService{report: testReport("r1")}
		server, err := NewServer(&Ports{Research: svc})
		require.NoError(t, err)

		_, _, err = server.handleResearch(ctx, nil, ResearchInput{
			Question: "q", Language: "go", Type: "issues", SortBy: "stars", MaxResults: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.Query{Text: "q", Language: "go", Type: "issue", SortBy: domain.SortStars, MaxResults: 3}, svc.got)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input ResearchInput
		}{
			{"unknown type", ResearchInput{Question: "q", Type: "wiki"}},
			{"unknown sort", ResearchInput{Question: "q", SortBy: "forks"}},
			{"empty question", ResearchInput{}},
			{"limit too large", ResearchInput{Question: "q", MaxResults: 150}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server, err := NewServer(&Ports{Research: &mockResearchService{report: testReport("r1")}})
				require.NoError(t, err)

				_, _, err = server.handleResearch(ctx, nil, tt.input)
				assert.ErrorIs(t, err, domain.ErrInvalidQuery)
				assert.Empty(t, server.reports.list())
			})
		}
	})

	t.Run("returns error on research failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Research: &mockResearchService{err: errors.New("boom")}})
		require.NoError(t, err)

		_, _, err = server.handleResearch(ctx, nil, ResearchInput{Question: "q"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "research failed: boom")
	})

	t.Run("caches the report", func(t *testing.T) {
		server, err := NewServer(&Ports{Research: &mockResearchService{report: testReport("r9")}})
		require.NoError(t, err)

		_, _, err = server.handleResearch(ctx, nil, ResearchInput{Question: "q"})
		require.NoError(t, err)

		_, ok := server.reports.get("r9")
		assert.True(t, ok)
	})
}

func TestServer_handleClassify(t *testing.T) {
	ctx := context.Background()
	strategy := &mockStrategyService{strategy: domain.Strategy{
		Category:       domain.CategoryDebugging,
		RewrittenQuery: "why does go build fail error fix",
		Language:       "go",
	}}

	t.Run("returns strategy", func(t *testing.T) {
		server, err := NewServer(&Ports{Research: &mockResearchService{}, Strategy: strategy})
		require.NoError(t, err)

		_, out, err := server.handleClassify(ctx, nil, ClassifyInput{Question: "why does go build fail"})

		require.NoError(t, err)
		assert.Equal(t, ClassifyOutput{
			Category:       "debugging",
			Description:    domain.CategoryDebugging.Description(),
			RewrittenQuery: "why does go build fail error fix",
			Language:       "go",
			Sources:        []string{"issue", "discussion"},
		}, out)
	})

	t.Run("rejects empty question", func(t *testing.T) {
		server, err := NewServer(&Ports{Research: &mockResearchService{}, Strategy: strategy})
		require.NoError(t, err)

		_, _, err = server.handleClassify(ctx, nil, ClassifyInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	})
}
