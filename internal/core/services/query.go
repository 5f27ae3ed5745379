package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers academic queries over a frozen dataset.
type QueryService struct {
	ds       *domain.Dataset
	resolver *Resolver
}

// NewQueryService creates a query service over ds.
func NewQueryService(ds *domain.Dataset) *QueryService {
	return &QueryService{
		ds:       ds,
		resolver: NewResolver(ds),
	}
}

// Resolver exposes the entity resolver used by the service.
func (s *QueryService) Resolver() *Resolver {
	return s.resolver
}

// StudentGrades lists every grade of the matching student as Markdown.
func (s *QueryService) StudentGrades(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	studentID, ok := s.resolver.ResolveStudent(query).Get()
	if !ok {
		return notFound("Student", query), nil
	}

	student, _ := s.ds.Students.Get(studentID)
	grades, _ := s.ds.Grades.Get(studentID)

	var b strings.Builder
	fmt.Fprintf(&b, "**Grades for %s (%s)**\n\n", student.Name, studentID)
	if len(grades) == 0 {
		b.WriteString("No grades found for this student.")
		return b.String(), nil
	}
	for _, g := range grades {
		fmt.Fprintf(&b, "* **Module:** %s\n", g.Module)
		fmt.Fprintf(&b, "  - **Grade:** %s\n", g.Grade)
		fmt.Fprintf(&b, "  - **Professor:** %s\n", s.ds.ProfessorName(g.ProfID, domain.NotAvailable))
	}
	return b.String(), nil
}

// Schedule lists the lectures of the course whose key matches exactly
// after normalisation, each annotated with the professor's name.
func (s *QueryService) Schedule(ctx context.Context, courseName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, ok := s.resolver.ResolveCourseExact(courseName).Get()
	if !ok {
		return notFound("Course", courseName), nil
	}

	lectures, _ := s.ds.Schedule.Get(key)
	out := make([]domain.AnnotatedLecture, 0, len(lectures))
	for _, l := range lectures {
		out = append(out, domain.AnnotatedLecture{
			ScheduleEntry: l,
			ProfessorName: s.ds.ProfessorName(l.ProfID, domain.Unknown),
		})
	}
	return marshal(out)
}

// AllProfessors lists every professor name in table order.
func (s *QueryService) AllProfessors(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	names := make([]string, 0, s.ds.Professors.Len())
	for _, prof := range s.ds.Professors.All() {
		names = append(names, prof.Name)
	}
	return marshal(names)
}

// ProfessorForModule resolves the module and reports the professor of the
// first grade recorded for it.
func (s *QueryService) ProfessorForModule(ctx context.Context, moduleName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	module, ok := s.resolver.ResolveModule(moduleName).Get()
	if !ok {
		return notFound("Module", moduleName), nil
	}

	profID, ok := s.moduleProfessor(module.ID)
	if !ok {
		return fmt.Sprintf("Could not determine professor for module '%s'.", module.Name), nil
	}

	return marshal(domain.ModuleProfessor{
		Module:    module.Name,
		Professor: s.ds.ProfessorName(profID, domain.NotAvailable),
	})
}

// moduleProfessor returns the prof_id of the first grade for moduleID.
func (s *QueryService) moduleProfessor(moduleID string) (string, bool) {
	for _, grades := range s.ds.Grades.All() {
		for _, g := range grades {
			if g.ModuleID == moduleID {
				return g.ProfID, true
			}
		}
	}
	return "", false
}

// ProfessorInfo returns the full record of the matching professor.
func (s *QueryService) ProfessorInfo(ctx context.Context, profName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	profID, ok := s.resolver.ResolveProfessor(profName).Get()
	if !ok {
		return notFound("Professor", profName), nil
	}

	prof, _ := s.ds.Professors.Get(profID)
	return marshal(prof)
}

// Events returns the events table verbatim.
func (s *QueryService) Events(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	events := s.ds.Events
	if events == nil {
		events = []domain.Event{}
	}
	return marshal(events)
}

// Stats summarises the dataset.
func (s *QueryService) Stats(_ context.Context) domain.DatasetStats {
	return s.ds.Stats()
}

// notFound formats a resolution failure, quoting the caller's original text.
func notFound(entity, query string) string {
	return fmt.Sprintf("%s '%s' not found.", entity, query)
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshalling payload: %w", err)
	}
	return string(data), nil
}
