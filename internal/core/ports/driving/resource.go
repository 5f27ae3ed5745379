package driving

import (
	"context"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// ResourceService serves key-addressed, read-only resources.
type ResourceService interface {
	// List enumerates every address of kind with a human-readable label.
	List(ctx context.Context, kind domain.ResourceKind) ([]domain.ResourceDescriptor, error)

	// Read returns the payload for key. A missing key yields the kind's
	// not-found sentinel with Found set to false.
	Read(ctx context.Context, kind domain.ResourceKind, key string) (domain.ResourceContent, error)

	// ReadURI parses a concrete dhbw:// URI and reads it.
	ReadURI(ctx context.Context, uri string) (domain.ResourceContent, error)
}
