// Package mcp provides an MCP (Model Context Protocol) server adapter for scout.
// It lets AI assistants research programming questions across GitHub.
package mcp

import "errors"

// ErrMissingResearchService is returned when the research service is not provided.
var ErrMissingResearchService = errors.New("mcp: research service is required")

// ErrNilPorts is returned when no ports are provided.
var ErrNilPorts = errors.New("mcp: ports are required")
