package mcp

import (
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query answers the tool calls.
	Query driving.QueryService

	// Resource serves dhbw:// resources.
	Resource driving.ResourceService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Resource == nil {
		return ErrMissingResourceService
	}
	return nil
}
