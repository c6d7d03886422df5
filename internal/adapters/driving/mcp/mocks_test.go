package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// mockResearchService records the last query and returns a fixed report.
type mockResearchService struct {
	report *domain.Report
	err    error
	got    domain.Query
}

func (m *mockResearchService) Research(_ context.Context, q domain.Query) (*domain.Report, error) {
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return m.report, nil
}

// mockStrategyService returns a fixed strategy.
type mockStrategyService struct {
	strategy domain.Strategy
}

func (m *mockStrategyService) Classify(string) domain.Strategy {
	return m.strategy
}

func testReport(id string) *domain.Report {
	repo := domain.ScoredResult{
		Kind:  domain.KindRepository,
		Score: 0.8579,
		Item: domain.RepositoryItem{
			FullName:  "acme/use-effect-cleanup",
			Stars:     4200,
			UpdatedAt: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
			URL:       "https://github.com/acme/use-effect-cleanup",
		},
	}
	return &domain.Report{
		ID:       id,
		Query:    domain.Query{Text: "react useeffect cleanup example"},
		Strategy: domain.Strategy{Category: domain.CategoryImplementation, RewrittenQuery: "react useeffect cleanup example example"},
		Sources:  []domain.Kind{domain.KindCode, domain.KindRepository},
		Results:  []domain.ScoredResult{repo},
		Summary: domain.Summary{
			Query:     "react useeffect cleanup example",
			Total:     1,
			Breakdown: domain.Breakdown{Repositories: 1},
			Findings:  []domain.Finding{{Kind: domain.FindingPopular, Count: 1, Text: "1 popular repository (> 1000 stars)"}},
			Top:       domain.TopResults{Repositories: []domain.ScoredResult{repo}},
		},
		Failures: []domain.SourceFailure{
			domain.NewSourceFailure(domain.KindCode, domain.NewSourceSearchError(domain.KindCode, domain.ErrRateLimited)),
		},
	}
}
