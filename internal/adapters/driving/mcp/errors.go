// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// academic assistant. It exposes the query operations as tools and the
// syllabus, news and publication tables as dhbw:// resources.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ErrMissingResourceService is returned when the resource service is not provided.
var ErrMissingResourceService = errors.New("mcp: resource service is required")
