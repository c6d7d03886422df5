package domain

import (
	"errors"
	"time"
)

// ScoredResult is an item tagged with its kind and relevance score.
// It is created by the scorer and read-only afterwards.
type ScoredResult struct {
	// Kind is the corpus the item was fetched from.
	Kind Kind `json:"kind"`

	// Score is the composite relevance in [0,1].
	Score float64 `json:"score"`

	// Item is the fetched record.
	Item Item `json:"item"`
}

// UpdatedAt returns the item's update time, zero when unknown.
func (r ScoredResult) UpdatedAt() time.Time {
	t, _ := r.Item.LastUpdated()
	return t
}

// Stars returns the item's popularity, zero when unknown.
func (r ScoredResult) Stars() int {
	n, _ := r.Item.Popularity()
	return n
}

// SourceFailure records one source call that failed during a research call.
type SourceFailure struct {
	// Kind is the source that failed.
	Kind Kind `json:"kind"`

	// Err is the failure cause.
	Err error `json:"-"`

	// Message is Err rendered for serialisation.
	Message string `json:"error"`
}

// NewSourceFailure builds a SourceFailure from an error.
func NewSourceFailure(kind Kind, err error) SourceFailure {
	msg := ""
	if err != nil {
		msg = err.Error()
		var sse *SourceSearchError
		if errors.As(err, &sse) && sse.Cause != nil {
			msg = sse.Cause.Error()
		}
	}
	return SourceFailure{Kind: kind, Err: err, Message: msg}
}

// Report is the answer to one research call.
type Report struct {
	// ID identifies the call in logs and MCP responses.
	ID string `json:"id"`

	// Query is the normalised query that was executed.
	Query Query `json:"query"`

	// Strategy is the classification applied to the query.
	Strategy Strategy `json:"strategy"`

	// Sources lists the kinds that were searched.
	Sources []Kind `json:"sources"`

	// Results is the sorted list truncated to MaxResults.
	Results []ScoredResult `json:"results"`

	// Summary is the layered view over all scored candidates.
	Summary Summary `json:"summary"`

	// Failures lists the sources that failed. Empty when complete.
	Failures []SourceFailure `json:"failures,omitempty"`
}

// Complete reports whether every searched source succeeded.
func (r *Report) Complete() bool {
	return len(r.Failures) == 0
}
