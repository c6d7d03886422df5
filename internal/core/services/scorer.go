package services

import (
	"math"
	"strings"
	"time"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Relevance model constants.
const (
	KeywordWeight   = 0.4
	FreshnessWeight = 0.3
	QualityWeight   = 0.3

	// FreshnessWindowDays is the age at which freshness reaches zero.
	FreshnessWindowDays = 730

	// QualityReferenceStars is the star count that maps to quality 1.0.
	// Fixed so scores stay comparable across calls.
	QualityReferenceStars = 100000
)

// Scorer computes the composite relevance of items.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer. A nil clock means time.Now.
func NewScorer(now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{now: now}
}

// Score returns 0.4*keyword + 0.3*freshness + 0.3*quality for item against
// queryText. The result is always within [0,1].
func (s *Scorer) Score(item domain.Item, queryText string) float64 {
	return s.score(item, QueryTokens(queryText), s.now())
}

// ScoreAll scores a batch of items from one source against the same clock
// reading, preserving input order.
func (s *Scorer) ScoreAll(kind domain.Kind, items []domain.Item, queryText string) []domain.ScoredResult {
	tokens := QueryTokens(queryText)
	now := s.now()
	out := make([]domain.ScoredResult, len(items))
	for i, item := range items {
		out[i] = domain.ScoredResult{Kind: kind, Score: s.score(item, tokens, now), Item: item}
	}
	return out
}

func (s *Scorer) score(item domain.Item, tokens []string, now time.Time) float64 {
	updated, hasUpdated := item.LastUpdated()
	stars, hasStars := item.Popularity()

	total := KeywordWeight*keywordMatch(item.SearchText(), tokens) +
		FreshnessWeight*Freshness(updated, hasUpdated, now) +
		QualityWeight*Quality(stars, hasStars)
	return clamp01(total)
}

// QueryTokens splits text on whitespace, lower-cases and deduplicates it,
// keeping first-seen order.
func QueryTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// KeywordMatch returns the fraction of query tokens that occur as
// substrings of text, case-insensitively. Empty queries score 0.
func KeywordMatch(text, queryText string) float64 {
	return keywordMatch(text, QueryTokens(queryText))
}

func keywordMatch(text string, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	text = strings.ToLower(text)
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

// Freshness decays linearly from 1 at now to 0 at FreshnessWindowDays.
// Unknown timestamps score 0; future timestamps score 1.
func Freshness(updated time.Time, ok bool, now time.Time) float64 {
	if !ok || updated.IsZero() {
		return 0
	}
	days := now.Sub(updated).Hours() / 24
	return clamp01(1 - days/FreshnessWindowDays)
}

// Quality maps a star count onto [0,1] logarithmically against
// QualityReferenceStars. Unknown or non-positive counts score 0.
func Quality(stars int, ok bool) float64 {
	if !ok || stars <= 0 {
		return 0
	}
	return clamp01(math.Log1p(float64(stars)) / math.Log1p(QualityReferenceStars))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
