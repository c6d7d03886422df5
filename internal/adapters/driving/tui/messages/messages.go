// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/scout/internal/core/domain"
)

// ResearchRequested asks the view to run research for a question.
type ResearchRequested struct {
	Question string
}

// ResearchCompleted carries the outcome of a research call.
type ResearchCompleted struct {
	Question string
	Report   *domain.Report
	Err      error
}

// ErrorOccurred reports a failure outside a research call.
type ErrorOccurred struct {
	Err error
}
