package tui

import "errors"

// ErrMissingResearchService is returned when the research service is not provided.
var ErrMissingResearchService = errors.New("tui: research service is required")

// ErrNilPorts is returned when no ports are provided.
var ErrNilPorts = errors.New("tui: ports are required")
