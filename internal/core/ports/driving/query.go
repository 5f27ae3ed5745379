package driving

import (
	"context"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// QueryService answers academic queries.
//
// Every method returns the payload handed to the host verbatim: either
// pre-formatted text or serialised JSON. A query that resolves to nothing
// produces a not-found message, never an error; errors are reserved for
// cancelled contexts and serialisation faults.
type QueryService interface {
	// StudentGrades lists the grades of the student matching query (name or id).
	StudentGrades(ctx context.Context, query string) (string, error)

	// Schedule lists the lectures of the course whose name matches exactly
	// after normalisation.
	Schedule(ctx context.Context, courseName string) (string, error)

	// AllProfessors lists every professor name in table order.
	AllProfessors(ctx context.Context) (string, error)

	// ProfessorForModule names the professor teaching the matching module.
	ProfessorForModule(ctx context.Context, moduleName string) (string, error)

	// ProfessorInfo returns the record of the matching professor.
	ProfessorInfo(ctx context.Context, profName string) (string, error)

	// Events lists every event.
	Events(ctx context.Context) (string, error)

	// Combined joins student, professor and course filters.
	Combined(ctx context.Context, q domain.CombinedQuery) (string, error)

	// Stats summarises the loaded dataset.
	Stats(ctx context.Context) domain.DatasetStats
}
