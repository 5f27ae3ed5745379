package driven

import (
	"context"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// DatasetLoader produces the academic dataset.
// Load is called once at startup; the returned dataset is never mutated.
type DatasetLoader interface {
	// Load reads and parses the whole dataset.
	Load(ctx context.Context) (*domain.Dataset, error)
}

// SnapshotWriter persists a dataset into a store that a DatasetLoader can
// later read back with identical table order.
type SnapshotWriter interface {
	// Import replaces the store contents with ds.
	Import(ctx context.Context, ds *domain.Dataset) error
}
