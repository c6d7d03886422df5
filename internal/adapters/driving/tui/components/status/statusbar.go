// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scout/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scout/internal/adapters/driving/tui/styles"
)

// State is what the status bar currently reports.
type State string

const (
	StateReady       State = "ready"
	StateResearching State = "researching"
	StateResults     State = "results"
	StateError       State = "error"
)

// Bar displays the research state and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	shown    int
	total    int
	failures int
	width    int
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateResearching:
		return b.styles.Muted.Render("Researching...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render("Error: " + b.message)
		}
		return b.styles.Error.Render("Error")
	case StateResults:
		text := fmt.Sprintf("%d of %d results", b.shown, b.total)
		if b.failures > 0 {
			return b.styles.Normal.Render(text) + " " +
				b.styles.Warning.Render(fmt.Sprintf("(%d source(s) failed)", b.failures))
		}
		return b.styles.Normal.Render(text)
	default:
		return b.styles.Muted.Render("Ready")
	}
}

func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == StateResults || b.state == StateError {
		bindings = b.keymap.ReportHelp()
	} else {
		bindings = b.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Help.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetError switches to StateError with msg.
func (b *Bar) SetError(msg string) {
	b.state = StateError
	b.message = msg
}

// Message returns the current error message.
func (b *Bar) Message() string {
	return b.message
}

// SetResults switches to StateResults with the given counts.
func (b *Bar) SetResults(shown, total, failures int) {
	b.state = StateResults
	b.message = ""
	b.shown, b.total, b.failures = shown, total, failures
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
