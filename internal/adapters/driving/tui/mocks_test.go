package tui

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// MockResearchService returns a fixed report or error.
type MockResearchService struct {
	Report *domain.Report
	Err    error
	Calls  int
}

func (m *MockResearchService) Research(_ context.Context, q domain.Query) (*domain.Report, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Report != nil {
		return m.Report, nil
	}
	return &domain.Report{
		ID:      "test",
		Query:   q,
		Summary: domain.Summary{Query: q.Text},
	}, nil
}
