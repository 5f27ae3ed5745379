package services

import (
	"context"
	"fmt"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driving"
)

// Ensure ResourceService implements the interface.
var _ driving.ResourceService = (*ResourceService)(nil)

// ResourceService serves syllabi, news and publications by exact key.
type ResourceService struct {
	ds *domain.Dataset
}

// NewResourceService creates a resource service over ds.
func NewResourceService(ds *domain.Dataset) *ResourceService {
	return &ResourceService{ds: ds}
}

// List enumerates every key of kind in table order.
func (s *ResourceService) List(ctx context.Context, kind domain.ResourceKind) ([]domain.ResourceDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var keys []string
	var label func(key string) string

	switch kind {
	case domain.ResourceSyllabus:
		keys = s.ds.Syllabi.Keys()
		label = func(code string) string { return "Syllabus for " + code }
	case domain.ResourceNews:
		keys = s.ds.News.Keys()
		label = func(id string) string {
			article, _ := s.ds.News.Get(id)
			return article.Headline
		}
	case domain.ResourcePublications:
		keys = s.ds.Publications.Keys()
		label = func(profID string) string {
			return "Publications for " + s.ds.ProfessorName(profID, domain.Unknown)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownResource, kind)
	}

	out := make([]domain.ResourceDescriptor, 0, len(keys))
	for _, key := range keys {
		out = append(out, domain.ResourceDescriptor{
			Kind:        kind,
			URI:         kind.URI(key),
			Name:        key,
			Description: label(key),
			MIMEType:    kind.MIMEType(),
		})
	}
	return out, nil
}

// Read returns the payload stored under key, or the kind's sentinel.
func (s *ResourceService) Read(ctx context.Context, kind domain.ResourceKind, key string) (domain.ResourceContent, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResourceContent{}, err
	}

	content := domain.ResourceContent{
		URI:      kind.URI(key),
		MIMEType: kind.MIMEType(),
		Text:     kind.NotFoundSentinel(),
	}

	var (
		value any
		found bool
	)
	switch kind {
	case domain.ResourceSyllabus:
		text, ok := s.ds.Syllabi.Get(key)
		if ok {
			content.Text = text
			content.Found = true
		}
		return content, nil
	case domain.ResourceNews:
		value, found = s.ds.News.Get(key)
	case domain.ResourcePublications:
		value, found = s.ds.Publications.Get(key)
	default:
		return domain.ResourceContent{}, fmt.Errorf("%w: %q", domain.ErrUnknownResource, kind)
	}

	if !found {
		return content, nil
	}
	text, err := marshal(value)
	if err != nil {
		return domain.ResourceContent{}, err
	}
	content.Text = text
	content.Found = true
	return content, nil
}

// ReadURI parses a concrete dhbw:// URI and reads it.
func (s *ResourceService) ReadURI(ctx context.Context, uri string) (domain.ResourceContent, error) {
	kind, key, err := domain.ParseResourceURI(uri)
	if err != nil {
		return domain.ResourceContent{}, err
	}
	content, err := s.Read(ctx, kind, key)
	if err != nil {
		return domain.ResourceContent{}, err
	}
	content.URI = uri
	return content, nil
}
