package services

import (
	"sort"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Aggregate orders scored results by sortBy and truncates them to limit.
// A limit of zero or less keeps every result. The input is not modified.
//
// Sorting is stable, so results that compare equal keep their input order:
//   - relevance: score descending, then last update descending
//   - stars: popularity descending
//   - updated: last update descending
func Aggregate(results []domain.ScoredResult, sortBy domain.SortBy, limit int) []domain.ScoredResult {
	sorted := make([]domain.ScoredResult, len(results))
	copy(sorted, results)

	less := lessFunc(sortBy)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func lessFunc(sortBy domain.SortBy) func(a, b domain.ScoredResult) bool {
	switch sortBy {
	case domain.SortStars:
		return func(a, b domain.ScoredResult) bool {
			return a.Stars() > b.Stars()
		}
	case domain.SortUpdated:
		return func(a, b domain.ScoredResult) bool {
			return a.UpdatedAt().After(b.UpdatedAt())
		}
	default:
		return func(a, b domain.ScoredResult) bool {
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.UpdatedAt().After(b.UpdatedAt())
		}
	}
}
