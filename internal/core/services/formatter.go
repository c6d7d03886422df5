package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// Summary thresholds.
const (
	// TopPerKind caps the detail list of each kind.
	TopPerKind = 5

	// HighQualityScore is the exclusive score threshold of the high-quality finding.
	HighQualityScore = 0.7

	// PopularStars is the exclusive star threshold of the popular finding.
	PopularStars = 1000

	// RecentWindow bounds the recently-updated finding.
	RecentWindow = 7 * 24 * time.Hour

	// CommonTermsLimit caps the common-terms finding.
	CommonTermsLimit = 3
)

// TechnicalVocabulary is the fixed term list of the common-terms finding.
var TechnicalVocabulary = []string{
	"api", "component", "hook", "function", "class", "async", "await",
	"promise", "error", "handler", "middleware", "service", "utility", "helper",
}

// Summarize reduces results into counts, key findings and the best results
// per kind. now anchors the recently-updated finding; calling Summarize
// twice with the same arguments yields the same summary.
func Summarize(results []domain.ScoredResult, queryText string, now time.Time) domain.Summary {
	summary := domain.Summary{
		Query: queryText,
		Total: len(results),
	}

	byKind := make(map[domain.Kind][]domain.ScoredResult, len(domain.AllKinds()))
	for _, r := range results {
		summary.Breakdown.Add(r.Kind)
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	summary.Top = domain.TopResults{
		Code:         Aggregate(byKind[domain.KindCode], domain.SortRelevance, TopPerKind),
		Repositories: Aggregate(byKind[domain.KindRepository], domain.SortRelevance, TopPerKind),
		Issues:       Aggregate(byKind[domain.KindIssue], domain.SortRelevance, TopPerKind),
		Discussions:  Aggregate(byKind[domain.KindDiscussion], domain.SortRelevance, TopPerKind),
	}
	summary.Findings = findings(results, now)
	return summary
}

func findings(results []domain.ScoredResult, now time.Time) []domain.Finding {
	var highQuality, popular, recent int
	for _, r := range results {
		if r.Score > HighQualityScore {
			highQuality++
		}
		if r.Kind == domain.KindRepository && r.Stars() > PopularStars {
			popular++
		}
		if t, ok := r.Item.LastUpdated(); ok && now.Sub(t) <= RecentWindow {
			recent++
		}
	}

	var out []domain.Finding
	if highQuality > 0 {
		out = append(out, domain.Finding{
			Kind:  domain.FindingHighQuality,
			Count: highQuality,
			Text:  fmt.Sprintf("%d high-quality %s (score > %.1f)", highQuality, plural(highQuality, "result"), HighQualityScore),
		})
	}
	if popular > 0 {
		out = append(out, domain.Finding{
			Kind:  domain.FindingPopular,
			Count: popular,
			Text:  fmt.Sprintf("%d popular %s (> %d stars)", popular, pluralRepo(popular), PopularStars),
		})
	}
	if recent > 0 {
		out = append(out, domain.Finding{
			Kind:  domain.FindingRecentlyUpdated,
			Count: recent,
			Text:  fmt.Sprintf("%d %s updated in the last 7 days", recent, plural(recent, "result")),
		})
	}
	if terms := CommonTerms(results, CommonTermsLimit); len(terms) > 0 {
		out = append(out, domain.Finding{
			Kind:  domain.FindingCommonTerms,
			Terms: terms,
			Text:  "Common terms: " + strings.Join(terms, ", "),
		})
	}
	return out
}

// CommonTerms returns up to limit TechnicalVocabulary terms ordered by
// whole-word frequency across the results' text. Ties go to the term seen
// first.
func CommonTerms(results []domain.ScoredResult, limit int) []string {
	vocab := make(map[string]struct{}, len(TechnicalVocabulary))
	for _, v := range TechnicalVocabulary {
		vocab[v] = struct{}{}
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		words := strings.FieldsFunc(strings.ToLower(r.Item.SearchText()), func(c rune) bool {
			return !unicode.IsLetter(c) && !unicode.IsDigit(c)
		})
		for _, w := range words {
			if _, ok := vocab[w]; !ok {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	// Insertion sort keeps first-seen order among equal counts.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func pluralRepo(n int) string {
	if n == 1 {
		return "repository"
	}
	return "repositories"
}

// Decorator styles fragments of the rendered summary.
// Implementations must not add or remove lines.
type Decorator interface {
	Title(s string) string
	Heading(s string) string
	Name(s string) string
	Muted(s string) string
	Score(s string) string
	Warning(s string) string
}

// PlainDecorator renders text unchanged.
type PlainDecorator struct{}

func (PlainDecorator) Title(s string) string   { return s }
func (PlainDecorator) Heading(s string) string { return s }
func (PlainDecorator) Name(s string) string    { return s }
func (PlainDecorator) Muted(s string) string   { return s }
func (PlainDecorator) Score(s string) string   { return s }
func (PlainDecorator) Warning(s string) string { return s }

// FormatSummary renders s as statistics, then key findings, then the top
// results of each kind. Issues and discussions share one block. A nil
// decorator renders plain text.
func FormatSummary(s domain.Summary, d Decorator) string {
	if d == nil {
		d = PlainDecorator{}
	}
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", d.Title(fmt.Sprintf("Research: %s", s.Query)))

	b.WriteString(d.Heading("Statistics") + "\n")
	fmt.Fprintf(&b, "  Total results: %d\n", s.Total)
	fmt.Fprintf(&b, "  Code: %d | Repositories: %d | Issues: %d | Discussions: %d\n",
		s.Breakdown.Code, s.Breakdown.Repositories, s.Breakdown.Issues, s.Breakdown.Discussions)
	if len(s.Failures) > 0 {
		fmt.Fprintf(&b, "  %s\n", d.Warning(fmt.Sprintf("Incomplete: %d %s failed", len(s.Failures), plural(len(s.Failures), "source"))))
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "    - %s: %s\n", f.Kind.Description(), f.Message)
		}
	}
	b.WriteString("\n")

	b.WriteString(d.Heading("Key findings") + "\n")
	if len(s.Findings) == 0 {
		fmt.Fprintf(&b, "  %s\n", d.Muted("No notable findings"))
	}
	for _, f := range s.Findings {
		fmt.Fprintf(&b, "  - %s\n", f.Text)
	}

	sections := []struct {
		title   string
		results []domain.ScoredResult
	}{
		{domain.KindCode.Description(), s.Top.Code},
		{domain.KindRepository.Description(), s.Top.Repositories},
		{"Discussions & Issues", Aggregate(append(append([]domain.ScoredResult{}, s.Top.Discussions...), s.Top.Issues...), domain.SortRelevance, TopPerKind)},
	}
	for _, sec := range sections {
		if len(sec.results) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", d.Heading(sec.title))
		for i, r := range sec.results {
			formatResult(&b, d, i+1, r)
		}
	}
	return b.String()
}

func formatResult(b *strings.Builder, d Decorator, n int, r domain.ScoredResult) {
	fmt.Fprintf(b, "  %d. %s  %s\n", n, d.Name(r.Item.Name()), d.Score(RelevanceIndicator(r.Score)))
	fmt.Fprintf(b, "     %s\n", d.Muted(r.Item.Location()))
	if link := r.Item.Link(); link != "" {
		fmt.Fprintf(b, "     %s\n", link)
	}
}

// RelevanceIndicator renders a score as five stars plus the numeric value.
func RelevanceIndicator(score float64) string {
	filled := int(score*5 + 0.5)
	if filled > 5 {
		filled = 5
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("%s%s %.2f", strings.Repeat("★", filled), strings.Repeat("☆", 5-filled), score)
}

// FormatReport renders the strategy line followed by the summary.
func FormatReport(r *domain.Report, d Decorator) string {
	if d == nil {
		d = PlainDecorator{}
	}
	if r == nil {
		return ""
	}

	kinds := make([]string, len(r.Sources))
	for i, k := range r.Sources {
		kinds[i] = k.String()
	}
	line := fmt.Sprintf("Strategy: %s | Sources: %s", r.Strategy.Category, strings.Join(kinds, ", "))
	if r.Strategy.Language != "" {
		line += " | Language: " + r.Strategy.Language
	}
	return d.Muted(line) + "\n\n" + FormatSummary(r.Summary, d)
}
