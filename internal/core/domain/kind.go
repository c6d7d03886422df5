package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Kind identifies the corpus a result came from.
// The set is closed: code, repository, issue and discussion.
type Kind string

// Available source kinds.
const (
	// KindCode is a file or snippet from code search.
	KindCode Kind = "code"

	// KindRepository is a repository from repository search.
	KindRepository Kind = "repository"

	// KindIssue is an issue from issue search.
	KindIssue Kind = "issue"

	// KindDiscussion is a discussion thread.
	KindDiscussion Kind = "discussion"
)

// AllKinds returns every kind in canonical order.
// Canonical order decides which kind keeps a result found by two sources.
func AllKinds() []Kind {
	return []Kind{KindCode, KindRepository, KindIssue, KindDiscussion}
}

// IsValid returns true if the kind is recognised.
func (k Kind) IsValid() bool {
	switch k {
	case KindCode, KindRepository, KindIssue, KindDiscussion:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// Description returns a plural, human-readable label.
func (k Kind) Description() string {
	switch k {
	case KindCode:
		return "Code"
	case KindRepository:
		return "Repositories"
	case KindIssue:
		return "Issues"
	case KindDiscussion:
		return "Discussions"
	default:
		return unknownDescription
	}
}

// SourceType is the query-level selector: a single kind or all of them.
type SourceType string

// SourceTypeAll selects every kind (narrowed by the query strategy).
const SourceTypeAll SourceType = "all"

// ParseSourceType parses a source type. Empty input means all.
func ParseSourceType(s string) (SourceType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", string(SourceTypeAll):
		return SourceTypeAll, nil
	case "repositories", "repos", "repo":
		return SourceType(KindRepository), nil
	case "issues":
		return SourceType(KindIssue), nil
	case "discussions":
		return SourceType(KindDiscussion), nil
	}
	if Kind(v).IsValid() {
		return SourceType(v), nil
	}
	return "", fmt.Errorf("%w: unknown source type %q", ErrInvalidQuery, s)
}

// Kind returns the single kind selected, or false for SourceTypeAll.
func (t SourceType) Kind() (Kind, bool) {
	if t == SourceTypeAll || t == "" {
		return "", false
	}
	return Kind(t), Kind(t).IsValid()
}

// SortBy selects the ordering axis of aggregated results.
type SortBy string

// Available sort orders.
const (
	// SortRelevance orders by composite score.
	SortRelevance SortBy = "relevance"

	// SortStars orders by popularity (stars or reactions).
	SortStars SortBy = "stars"

	// SortUpdated orders by last update time.
	SortUpdated SortBy = "updated"
)

// ParseSortBy parses a sort order. Empty input means relevance.
func ParseSortBy(s string) (SortBy, error) {
	switch v := SortBy(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortStars, SortUpdated:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidQuery, s)
	}
}
