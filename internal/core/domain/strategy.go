package domain

// Category is the intent detected in a question.
type Category string

// Query categories, highest priority first.
const (
	CategoryImplementation Category = "implementation"
	CategoryDebugging      Category = "debugging"
	CategorySelection      Category = "selection"
	CategoryBestPractice   Category = "best_practice"
	CategoryGeneral        Category = "general"
)

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Description returns a human-readable description of the category.
func (c Category) Description() string {
	switch c {
	case CategoryImplementation:
		return "Implementation (looking for working examples)"
	case CategoryDebugging:
		return "Debugging (looking for fixes to an error)"
	case CategorySelection:
		return "Selection (choosing a library or tool)"
	case CategoryBestPractice:
		return "Best practice (looking for recommended approaches)"
	case CategoryGeneral:
		return "General"
	default:
		return unknownDescription
	}
}

// RecommendedKinds returns the corpora worth searching for the category,
// in canonical order.
func (c Category) RecommendedKinds() []Kind {
	switch c {
	case CategoryImplementation:
		return []Kind{KindCode, KindRepository}
	case CategoryDebugging:
		return []Kind{KindIssue, KindDiscussion}
	case CategorySelection:
		return []Kind{KindRepository}
	case CategoryBestPractice:
		return []Kind{KindCode, KindRepository, KindDiscussion}
	default:
		return AllKinds()
	}
}

// Strategy is the outcome of classifying a question.
type Strategy struct {
	Category       Category `json:"category"`
	RewrittenQuery string   `json:"rewritten_query"`
	Language       string   `json:"language,omitempty"`
}
