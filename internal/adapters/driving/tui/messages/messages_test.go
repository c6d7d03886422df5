package messages

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/scout/internal/core/domain"
)

func TestMessages_AreTeaMessages(t *testing.T) {
	report := &domain.Report{ID: "r1"}
	msgs := []tea.Msg{
		ResearchRequested{Question: "react hooks"},
		ResearchCompleted{Question: "react hooks", Report: report},
		ErrorOccurred{Err: errors.New("boom")},
	}

	for _, msg := range msgs {
		switch m := msg.(type) {
		case ResearchRequested:
			assert.Equal(t, "react hooks", m.Question)
		case ResearchCompleted:
			assert.Same(t, report, m.Report)
			assert.NoError(t, m.Err)
		case ErrorOccurred:
			assert.EqualError(t, m.Err, "boom")
		default:
			t.Fatalf("unexpected message %T", msg)
		}
	}
}
