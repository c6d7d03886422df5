// Package tui provides an interactive terminal user interface for scout.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Research answers questions.
	Research driving.ResearchService

	// Defaults supplies type, sort order and limit for every question.
	Defaults domain.Query
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrNilPorts
	}
	if p.Research == nil {
		return ErrMissingResearchService
	}
	return nil
}
