package domain

// Breakdown counts results per kind.
type Breakdown struct {
	Code         int `json:"code"`
	Repositories int `json:"repositories"`
	Issues       int `json:"issues"`
	Discussions  int `json:"discussions"`
}

// Add increments the counter for kind.
func (b *Breakdown) Add(kind Kind) {
	switch kind {
	case KindCode:
		b.Code++
	case KindRepository:
		b.Repositories++
	case KindIssue:
		b.Issues++
	case KindDiscussion:
		b.Discussions++
	}
}

// Count returns the counter for kind.
func (b Breakdown) Count(kind Kind) int {
	switch kind {
	case KindCode:
		return b.Code
	case KindRepository:
		return b.Repositories
	case KindIssue:
		return b.Issues
	case KindDiscussion:
		return b.Discussions
	default:
		return 0
	}
}

// Total returns the sum over all kinds.
func (b Breakdown) Total() int {
	return b.Code + b.Repositories + b.Issues + b.Discussions
}

// FindingKind identifies a key finding.
type FindingKind string

// Key findings, in presentation order.
const (
	FindingHighQuality     FindingKind = "high_quality"
	FindingPopular         FindingKind = "popular"
	FindingRecentlyUpdated FindingKind = "recently_updated"
	FindingCommonTerms     FindingKind = "common_terms"
)

// Finding is one line of the findings block.
type Finding struct {
	Kind FindingKind `json:"kind"`

	// Count is set for the counting findings.
	Count int `json:"count,omitempty"`

	// Terms is set for FindingCommonTerms, most frequent first.
	Terms []string `json:"terms,omitempty"`

	// Text is the rendered sentence.
	Text string `json:"text"`
}

// TopResults holds the best results per kind, score descending.
type TopResults struct {
	Code         []ScoredResult `json:"code"`
	Repositories []ScoredResult `json:"repositories"`
	Issues       []ScoredResult `json:"issues"`
	Discussions  []ScoredResult `json:"discussions"`
}

// For returns the slice for kind.
func (t TopResults) For(kind Kind) []ScoredResult {
	switch kind {
	case KindCode:
		return t.Code
	case KindRepository:
		return t.Repositories
	case KindIssue:
		return t.Issues
	case KindDiscussion:
		return t.Discussions
	default:
		return nil
	}
}

// Summary is the three-tier view of one research call:
// statistics, key findings and top results per kind.
type Summary struct {
	Query     string          `json:"query"`
	Total     int             `json:"total"`
	Breakdown Breakdown       `json:"breakdown"`
	Findings  []Finding       `json:"findings"`
	Top       TopResults      `json:"top"`
	Failures  []SourceFailure `json:"failures,omitempty"`
}
