// Package research provides the question and report view for the TUI.
package research

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scout/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/scout/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/scout/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scout/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/scout/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
	"github.com/custodia-labs/scout/internal/core/services"
)

// ErrNoResearchService is reported when a question is submitted without a service.
var ErrNoResearchService = errors.New("research service not configured")

// chrome is the number of lines taken by everything but the report.
const chrome = 7

// View is the question input above a scrollable report.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	report    viewport.Model
	statusbar *status.Bar
	help      help.Model
	decorator services.Decorator

	service  driving.ResearchService
	template domain.Query
	ctx      context.Context

	width      int
	height     int
	focusInput bool
	last       *domain.Report
	err        error
}

// NewView creates the research view. template supplies the type, sort
// order and limit of every query; its text is replaced by the question.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	service driving.ResearchService,
	template domain.Query,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQuestionInput(s),
		report:     viewport.New(80, 24-chrome),
		statusbar:  status.NewBar(s, km),
		help:       help.New(),
		decorator:  styles.NewDecorator(s),
		service:    service,
		template:   template,
		ctx:        context.Background(),
		focusInput: true,
	}
	v.report.SetContent(s.Muted.Render("Type a question and press enter."))
	return v
}

// WithContext sets the context research calls run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the input cursor.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ResearchRequested:
		return v, v.submit(msg.Question)

	case messages.ResearchCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetError(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	} else {
		v.report, cmd = v.report.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.focusInput {
		if keymap.Matches(key, v.keymap.Submit) {
			return v, v.submit(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(key, v.keymap.Edit):
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Help):
		v.help.ShowAll = !v.help.ShowAll
		v.resize()
		return v, nil
	}

	var cmd tea.Cmd
	v.report, cmd = v.report.Update(msg)
	return v, cmd
}

// submit starts a research call for question. Blank questions are ignored.
func (v *View) submit(question string) tea.Cmd {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil
	}

	v.focusInput = false
	v.input.Blur()
	v.statusbar.SetState(status.StateResearching)

	svc := v.service
	ctx := v.ctx
	q := v.template
	q.Text = question

	return func() tea.Msg {
		if svc == nil {
			return messages.ResearchCompleted{Question: question, Err: ErrNoResearchService}
		}
		report, err := svc.Research(ctx, q)
		return messages.ResearchCompleted{Question: question, Report: report, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.ResearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.last = nil
		v.statusbar.SetError(msg.Err.Error())
		v.report.SetContent(v.styles.Error.Render("Research failed: " + msg.Err.Error()))
		return
	}

	v.err = nil
	v.last = msg.Report
	v.statusbar.SetResults(len(msg.Report.Results), msg.Report.Summary.Total, len(msg.Report.Failures))
	v.report.SetContent(services.FormatReport(msg.Report, v.decorator))
	v.report.GotoTop()
}

// SetDimensions sizes the view to the terminal.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.resize()
}

func (v *View) resize() {
	v.input.SetWidth(v.width)
	v.statusbar.SetWidth(v.width)
	v.help.Width = v.width

	helpLines := 0
	if v.help.ShowAll {
		helpLines = lipgloss.Height(v.help.View(v.keymap))
	}
	v.report.Width = v.width
	v.report.Height = max(v.height-chrome-helpLines, 1)
}

// View renders the view.
func (v *View) View() string {
	parts := []string{
		v.styles.Title.Render("scout"),
		v.input.View(),
		"",
		v.report.View(),
	}
	if v.help.ShowAll {
		parts = append(parts, v.help.View(v.keymap))
	}
	parts = append(parts, v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Report returns the last successful report, nil when none.
func (v *View) Report() *domain.Report {
	return v.last
}

// Err returns the last research error.
func (v *View) Err() error {
	return v.err
}

// InputFocused reports whether keys go to the question input.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Question returns the typed question.
func (v *View) Question() string {
	return v.input.Value()
}
