package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/memory"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/services"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns content", func(t *testing.T) {
		resources := &mockResourceService{
			content: domain.ResourceContent{
				URI:      "dhbw://syllabus/webeng",
				MIMEType: domain.MIMETextPlain,
				Text:     "HTTP and REST",
				Found:    true,
			},
		}
		server, err := NewServer(ctx, &Ports{Query: &mockQueryService{}, Resource: resources})
		require.NoError(t, err)

		result, err := server.handleResource(ctx, makeReadResourceRequest("dhbw://syllabus/webeng"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "dhbw://syllabus/webeng", result.Contents[0].URI)
		assert.Equal(t, domain.MIMETextPlain, result.Contents[0].MIMEType)
		assert.Equal(t, "HTTP and REST", result.Contents[0].Text)
		assert.Equal(t, "dhbw://syllabus/webeng", resources.lastURI)
	})

	t.Run("unknown resource maps to not found", func(t *testing.T) {
		resources := &mockResourceService{readErr: domain.ErrUnknownResource}
		server, err := NewServer(ctx, &Ports{Query: &mockQueryService{}, Resource: resources})
		require.NoError(t, err)

		_, err = server.handleResource(ctx, makeReadResourceRequest("dhbw://grades/s1"))

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrUnknownResource))
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		resources := &mockResourceService{readErr: errors.New("disk on fire")}
		server, err := NewServer(ctx, &Ports{Query: &mockQueryService{}, Resource: resources})
		require.NoError(t, err)

		_, err = server.handleResource(ctx, makeReadResourceRequest("dhbw://news/n1"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading dhbw://news/n1")
	})
}

func TestServer_handleResource_Sentinels(t *testing.T) {
	ctx := context.Background()
	ds := memory.NewDatasetBuilder().
		Professor(domain.Professor{ID: "p2", Name: "Prof. Dr. Müller"}).
		Syllabus("webeng", "HTTP and REST").
		News("n1", domain.NewsArticle{Headline: "Library"}).
		Publication("p2", domain.Publication{Title: "Paper"}).
		Build()

	server, err := NewServer(ctx, &Ports{
		Query:    services.NewQueryService(ds),
		Resource: services.NewResourceService(ds),
	})
	require.NoError(t, err)

	tests := []struct {
		uri      string
		wantText string
		wantMIME string
	}{
		{"dhbw://syllabus/webeng", "HTTP and REST", domain.MIMETextPlain},
		{"dhbw://syllabus/missing", domain.SyllabusNotFound, domain.MIMETextPlain},
		{"dhbw://news/n9", domain.NewsNotFound, domain.MIMEJSON},
		{"dhbw://publications/p7", domain.PublicationsNotFound, domain.MIMEJSON},
		{"dhbw://publications/p2", `[{"title":"Paper"}]`, domain.MIMEJSON},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			result, err := server.handleResource(ctx, makeReadResourceRequest(tt.uri))

			require.NoError(t, err)
			require.Len(t, result.Contents, 1)
			assert.Equal(t, tt.uri, result.Contents[0].URI)
			assert.Equal(t, tt.wantText, result.Contents[0].Text)
			assert.Equal(t, tt.wantMIME, result.Contents[0].MIMEType)
		})
	}
}
