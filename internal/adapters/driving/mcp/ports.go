package mcp

import (
	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// Research answers questions.
	Research driving.ResearchService

	// Strategy backs the classify tool. Optional.
	Strategy driving.StrategyService

	// Defaults supplies the query fields a tool call leaves out.
	Defaults domain.Query
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrNilPorts
	}
	if p.Research == nil {
		return ErrMissingResearchService
	}
	return nil
}

// defaults returns Defaults with unset fields filled in.
func (p *Ports) defaults() domain.Query {
	q := p.Defaults
	q.Text = ""
	if q.MaxResults == 0 {
		q.MaxResults = domain.DefaultMaxResults
	}
	return q.Normalised()
}
