package services

import (
	"context"
	"fmt"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

const defaultQueryDescription = "Query Results"

// Combined answers a query joining student, professor and course filters.
//
// An unresolvable student or professor short-circuits with a not-found
// message, student first. Otherwise the first applicable branch wins:
// student grades (optionally narrowed to the professor), modules taught by
// the professor, or the first course whose key contains the course name.
func (s *QueryService) Combined(ctx context.Context, q domain.CombinedQuery) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var studentID, profID string
	if q.StudentName != "" {
		id, ok := s.resolver.ResolveStudent(q.StudentName).Get()
		if !ok {
			return notFound("Student", q.StudentName), nil
		}
		studentID = id
	}
	if q.ProfessorName != "" {
		id, ok := s.resolver.ResolveProfessor(q.ProfessorName).Get()
		if !ok {
			return notFound("Professor", q.ProfessorName), nil
		}
		profID = id
	}

	result := s.combine(studentID, profID, q.CourseName)
	logger.Debugw("combined query",
		"description", result.QueryDescription,
		logger.FieldCount, len(result.Results))
	return marshal(result)
}

// combine runs the branch selection on already-resolved identifiers.
func (s *QueryService) combine(studentID, profID, courseName string) domain.CombinedResult {
	result := domain.CombinedResult{
		QueryDescription: defaultQueryDescription,
		Results:          []any{},
	}

	switch {
	case studentID != "":
		student, _ := s.ds.Students.Get(studentID)
		result.QueryDescription = fmt.Sprintf("Results for student: %s", student.Name)
		if profID != "" {
			result.QueryDescription += fmt.Sprintf(" and professor: %s",
				s.ds.ProfessorName(profID, domain.NotAvailable))
		}
		grades, _ := s.ds.Grades.Get(studentID)
		for _, g := range grades {
			if profID != "" && g.ProfID != profID {
				continue
			}
			result.Results = append(result.Results, domain.AnnotatedGrade{
				Grade:         g,
				ProfessorName: s.ds.ProfessorName(g.ProfID, domain.NotAvailable),
			})
		}

	case profID != "":
		result.QueryDescription = fmt.Sprintf("Courses taught by professor: %s",
			s.ds.ProfessorName(profID, domain.NotAvailable))
		for _, module := range s.modulesTaughtBy(profID) {
			result.Results = append(result.Results, module)
		}

	case courseName != "":
		result.QueryDescription = fmt.Sprintf("Information for course: %s", courseName)
		if key, ok := s.resolver.ResolveCourse(courseName).Get(); ok {
			course, _ := s.ds.Courses.Get(key)
			result.Results = append(result.Results, course)
		}
	}

	return result
}

// modulesTaughtBy returns distinct module names graded by profID, in
// first-seen order across all students.
func (s *QueryService) modulesTaughtBy(profID string) []string {
	seen := make(map[string]struct{})
	var modules []string
	for _, grades := range s.ds.Grades.All() {
		for _, g := range grades {
			if g.ProfID != profID {
				continue
			}
			if _, ok := seen[g.Module]; ok {
				continue
			}
			seen[g.Module] = struct{}{}
			modules = append(modules, g.Module)
		}
	}
	return modules
}
