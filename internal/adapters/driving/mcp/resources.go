package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

// registerResources registers every concrete resource plus one template
// per kind, so reads of keys outside the listing still reach the handler
// and receive the kind's not-found sentinel.
func (s *Server) registerResources(ctx context.Context) error {
	for _, kind := range domain.ResourceKinds {
		descriptors, err := s.ports.Resource.List(ctx, kind)
		if err != nil {
			return fmt.Errorf("listing %s: %w", kind, err)
		}

		for _, d := range descriptors {
			s.server.AddResource(&mcp.Resource{
				URI:         d.URI,
				Name:        d.Name,
				Description: d.Description,
				MIMEType:    d.MIMEType,
			}, s.handleResource)
		}

		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: kind.URITemplate(),
			Name:        string(kind),
			Description: fmt.Sprintf("%s by %s", kind, kind.Param()),
			MIMEType:    kind.MIMEType(),
		}, s.handleResource)

		logger.Debugw("registered resources", logger.FieldOperation, string(kind), logger.FieldCount, len(descriptors))
	}
	return nil
}

// handleResource reads any dhbw:// resource.
func (s *Server) handleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI

	content, err := s.ports.Resource.ReadURI(ctx, uri)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownResource) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return nil, fmt.Errorf("reading %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      content.URI,
			MIMEType: content.MIMEType,
			Text:     content.Text,
		}},
	}, nil
}
