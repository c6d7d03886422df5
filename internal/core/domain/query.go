package domain

import (
	"fmt"
	"strings"
)

const (
	// MinResults is the smallest accepted MaxResults.
	MinResults = 1

	// MaxResultsLimit is the largest accepted MaxResults (GitHub's per-page cap).
	MaxResultsLimit = 100

	// DefaultMaxResults is used by the outer surfaces when no limit is given.
	DefaultMaxResults = 20
)

// Query is a research request.
type Query struct {
	// Text is the natural-language or keyword question.
	Text string `json:"text"`

	// Language optionally restricts results to a programming language.
	// When set it takes precedence over the inferred language.
	Language string `json:"language,omitempty"`

	// Type selects a single corpus or all of them.
	Type SourceType `json:"type"`

	// MaxResults caps the final result list (1..100).
	MaxResults int `json:"max_results"`

	// SortBy selects the ordering axis.
	SortBy SortBy `json:"sort_by"`
}

// Validate checks the query invariants.
// Failures wrap ErrInvalidQuery.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: text is empty", ErrInvalidQuery)
	}
	if q.MaxResults < MinResults || q.MaxResults > MaxResultsLimit {
		return fmt.Errorf("%w: max results %d outside [%d,%d]",
			ErrInvalidQuery, q.MaxResults, MinResults, MaxResultsLimit)
	}
	if q.Type != "" && q.Type != SourceTypeAll && !Kind(q.Type).IsValid() {
		return fmt.Errorf("%w: unknown source type %q", ErrInvalidQuery, q.Type)
	}
	switch q.SortBy {
	case "", SortRelevance, SortStars, SortUpdated:
	default:
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidQuery, q.SortBy)
	}
	return nil
}

// Normalised returns a copy with trimmed text and defaults applied to
// the optional selectors.
func (q Query) Normalised() Query {
	q.Text = strings.TrimSpace(q.Text)
	q.Language = strings.ToLower(strings.TrimSpace(q.Language))
	if q.Type == "" {
		q.Type = SourceTypeAll
	}
	if q.SortBy == "" {
		q.SortBy = SortRelevance
	}
	return q
}
