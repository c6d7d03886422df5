package driving

import (
	"context"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// ResearchService answers a query from every applicable corpus.
type ResearchService interface {
	// Research validates q, searches the applicable sources concurrently and
	// returns the ranked, summarised report.
	//
	// Validation failures wrap domain.ErrInvalidQuery and no source is
	// contacted. Source failures do not fail the call; they are listed in
	// Report.Failures next to the results of the other sources.
	Research(ctx context.Context, q domain.Query) (*domain.Report, error)
}

// StrategyService classifies questions.
type StrategyService interface {
	// Classify detects the intent of text, rewrites it for search and infers
	// a language filter.
	Classify(text string) domain.Strategy
}
