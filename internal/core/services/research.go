package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// sourceBatch is the settled outcome of one source call.
type sourceBatch struct {
	kind  domain.Kind
	items []domain.Item
	err   error
}

// ResearchService searches every applicable source concurrently and ranks
// the combined results.
type ResearchService struct {
	client      driven.SourceClient
	discussions driven.DiscussionSearcher
	now         func() time.Time
	newID       func() string
}

// NewResearchService creates a research service backed by client.
// Discussions are searched through the client until SetDiscussionSearcher
// installs a dedicated implementation.
func NewResearchService(client driven.SourceClient) *ResearchService {
	return &ResearchService{
		client:      client,
		discussions: client,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// SetDiscussionSearcher replaces the discussion search capability.
func (s *ResearchService) SetDiscussionSearcher(d driven.DiscussionSearcher) {
	if d != nil {
		s.discussions = d
	}
}

// SetClock sets the clock used for freshness and findings.
func (s *ResearchService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Research implements driving.ResearchService.
func (s *ResearchService) Research(ctx context.Context, q domain.Query) (*domain.Report, error) {
	logger.Section("Research")
	logger.Debug("Query: %q (type=%s, limit=%d, sort=%s)", q.Text, q.Type, q.MaxResults, q.SortBy)

	if err := q.Validate(); err != nil {
		logger.Warn("Rejected query: %v", err)
		return nil, err
	}
	q = q.Normalised()

	strategy := Classify(q.Text)
	if q.Language != "" {
		strategy.Language = q.Language
	}
	logger.Info("Strategy: %s", strategy.Category.Description())
	logger.Debug("Rewritten query: %q, language: %q", strategy.RewrittenQuery, strategy.Language)

	kinds := Sources(q.Type, strategy.Category)
	logger.Debug("Sources: %v", kinds)

	batches := s.fanOut(ctx, kinds, strategy, q.MaxResults)

	now := s.now()
	scorer := NewScorer(func() time.Time { return now })

	var (
		candidates []domain.ScoredResult
		failures   []domain.SourceFailure
	)
	seen := make(map[string]struct{})
	for _, batch := range batches {
		if batch.err != nil {
			logger.Warn("%s search failed: %v", batch.kind, batch.err)
			failures = append(failures, domain.NewSourceFailure(batch.kind, batch.err))
			continue
		}
		logger.Debug("%s: %d items", batch.kind, len(batch.items))
		candidates = append(candidates, scorer.ScoreAll(batch.kind, dedupe(batch.items, seen), q.Text)...)
	}

	ranked := Aggregate(candidates, q.SortBy, 0)
	results := Aggregate(ranked, q.SortBy, q.MaxResults)

	summary := Summarize(ranked, q.Text, now)
	summary.Failures = failures

	logger.Info("Results: %d of %d candidates, %d failed sources", len(results), len(ranked), len(failures))

	return &domain.Report{
		ID:       s.newID(),
		Query:    q,
		Strategy: strategy,
		Sources:  kinds,
		Results:  results,
		Summary:  summary,
		Failures: failures,
	}, nil
}

// Sources returns the kinds to search for a query type and category.
// A specific type wins; "all" is narrowed to the category's recommendation.
func Sources(t domain.SourceType, category domain.Category) []domain.Kind {
	if kind, ok := t.Kind(); ok {
		return []domain.Kind{kind}
	}
	return category.RecommendedKinds()
}

// fanOut starts every source call before waiting on any of them and
// returns one settled batch per kind, in kinds order. Each task writes only
// its own slot and never returns an error, so one failure cannot cancel
// the others.
func (s *ResearchService) fanOut(
	ctx context.Context, kinds []domain.Kind, strategy domain.Strategy, limit int,
) []sourceBatch {
	batches := make([]sourceBatch, len(kinds))

	var g errgroup.Group
	for i, kind := range kinds {
		g.Go(func() error {
			items, err := s.search(ctx, kind, strategy.RewrittenQuery, strategy.Language, limit)
			if err != nil && !errors.Is(err, domain.ErrSourceSearchFailed) {
				err = domain.NewSourceSearchError(kind, err)
			}
			batches[i] = sourceBatch{kind: kind, items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return batches
}

func (s *ResearchService) search(
	ctx context.Context, kind domain.Kind, query, language string, limit int,
) ([]domain.Item, error) {
	switch kind {
	case domain.KindCode:
		items, err := s.client.SearchCode(ctx, query, language, limit)
		return toItems(items), err
	case domain.KindRepository:
		items, err := s.client.SearchRepositories(ctx, query, language, limit)
		return toItems(items), err
	case domain.KindIssue:
		items, err := s.client.SearchIssues(ctx, query, language, limit)
		return toItems(items), err
	case domain.KindDiscussion:
		items, err := s.discussions.SearchDiscussions(ctx, query, language, limit)
		return toItems(items), err
	default:
		return nil, domain.ErrNotImplemented
	}
}

func toItems[T domain.Item](in []T) []domain.Item {
	out := make([]domain.Item, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// dedupe drops items whose link was already seen in an earlier batch.
// Items without a link are always kept.
func dedupe(items []domain.Item, seen map[string]struct{}) []domain.Item {
	out := items[:0:0]
	for _, item := range items {
		link := item.Link()
		if link != "" {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
		}
		out = append(out, item)
	}
	return out
}
