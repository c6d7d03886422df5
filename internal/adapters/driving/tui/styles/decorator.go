package styles

import (
	"github.com/custodia-labs/scout/internal/core/services"
)

// Ensure Decorator implements services.Decorator.
var _ services.Decorator = (*Decorator)(nil)

// Decorator renders summary fragments with lipgloss styles.
type Decorator struct {
	styles *Styles
}

// NewDecorator creates a decorator over s. Nil means the default styles.
func NewDecorator(s *Styles) *Decorator {
	if s == nil {
		s = DefaultStyles()
	}
	return &Decorator{styles: s}
}

// Title implements services.Decorator.
func (d *Decorator) Title(s string) string { return d.styles.Title.Render(s) }

// Heading implements services.Decorator.
func (d *Decorator) Heading(s string) string { return d.styles.Subtitle.Render(s) }

// Name implements services.Decorator.
func (d *Decorator) Name(s string) string { return d.styles.Normal.Bold(true).Render(s) }

// Muted implements services.Decorator.
func (d *Decorator) Muted(s string) string { return d.styles.Muted.Render(s) }

// Score implements services.Decorator.
func (d *Decorator) Score(s string) string { return d.styles.Score.Render(s) }

// Warning implements services.Decorator.
func (d *Decorator) Warning(s string) string { return d.styles.Warning.Render(s) }
