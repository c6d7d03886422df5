package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// Ensure StrategyService implements the interface.
var _ driving.StrategyService = (*StrategyService)(nil)

// categoryRule maps trigger phrases to a category.
type categoryRule struct {
	category domain.Category
	phrases  []string
	patterns []*regexp.Regexp
	suffix   string
}

// categoryRules are evaluated in order; the first matching rule wins.
var categoryRules = []categoryRule{
	{
		category: domain.CategoryImplementation,
		phrases:  []string{"how to implement", "how to write", "how do i implement", "如何实现"},
		suffix:   " example",
	},
	{
		category: domain.CategoryDebugging,
		phrases:  []string{"error", "bug", "exception", "not working"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`why does .+ fail`)},
		suffix:   " error fix",
	},
	{
		category: domain.CategorySelection,
		phrases:  []string{"which library", "what should i use", "which framework"},
		suffix:   " stars:>100",
	},
	{
		category: domain.CategoryBestPractice,
		phrases:  []string{"best practice", "recommended approach"},
		suffix:   " best practices",
	},
}

// LanguageAliases maps query tokens to GitHub language qualifiers.
// Plain "go" is deliberately absent: it is a common English word.
var LanguageAliases = map[string]string{
	"javascript": "javascript",
	"js":         "javascript",
	"node":       "javascript",
	"nodejs":     "javascript",
	"react":      "javascript",
	"vue":        "javascript",
	"typescript": "typescript",
	"ts":         "typescript",
	"nextjs":     "typescript",
	"python":     "python",
	"py":         "python",
	"django":     "python",
	"flask":      "python",
	"rust":       "rust",
	"golang":     "go",
	"java":       "java",
	"spring":     "java",
	"kotlin":     "kotlin",
	"swift":      "swift",
	"ruby":       "ruby",
	"rails":      "ruby",
	"php":        "php",
	"laravel":    "php",
	"csharp":     "csharp",
	"c#":         "csharp",
	"dotnet":     "csharp",
	"cpp":        "cpp",
	"c++":        "cpp",
}

// StrategyService classifies questions into search strategies.
type StrategyService struct{}

// NewStrategyService creates a new strategy service.
func NewStrategyService() *StrategyService {
	return &StrategyService{}
}

// Classify implements driving.StrategyService.
func (s *StrategyService) Classify(text string) domain.Strategy {
	return Classify(text)
}

// Classify detects the intent of text, rewrites it for search and infers a
// language from LanguageAliases. It is a pure function of its input.
func Classify(text string) domain.Strategy {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	strategy := domain.Strategy{
		Category:       domain.CategoryGeneral,
		RewrittenQuery: text,
		Language:       InferLanguage(text),
	}
	for _, rule := range categoryRules {
		if rule.matches(lower) {
			strategy.Category = rule.category
			strategy.RewrittenQuery = text + rule.suffix
			break
		}
	}
	return strategy
}

func (r categoryRule) matches(lower string) bool {
	for _, p := range r.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, re := range r.patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// InferLanguage returns the language of the first token found in
// LanguageAliases, or empty when none matches.
func InferLanguage(text string) string {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,;:!?()[]{}\"'`")
		if lang, ok := LanguageAliases[tok]; ok {
			return lang
		}
	}
	return ""
}
