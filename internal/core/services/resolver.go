package services

import (
	"strings"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

// Resolver maps free-text queries to canonical entity identifiers.
//
// The three resolvers deliberately differ: students are matched by id,
// exact name and then substring; professors and modules by substring only.
type Resolver struct {
	ds *domain.Dataset
}

// NewResolver creates a resolver over ds.
func NewResolver(ds *domain.Dataset) *Resolver {
	return &Resolver{ds: ds}
}

// ResolveStudent returns the id of the first student matching query.
// Tiers are evaluated in order and the first success wins:
//
//  1. the normalized query equals a student id
//  2. the normalized query equals a normalized name (table order)
//  3. the normalized query is contained in a normalized name (table order)
func (r *Resolver) ResolveStudent(query string) domain.Resolution[string] {
	q := domain.Normalize(query)
	logger.Debugw("resolving student", logger.FieldQuery, query, "normalized", q)

	if r.ds.Students.Has(q) {
		logger.Debugw("student matched", logger.FieldTier, "id", logger.FieldMatch, q)
		return domain.Found(q)
	}

	for id, student := range r.ds.Students.All() {
		if domain.Normalize(student.Name) == q {
			logger.Debugw("student matched", logger.FieldTier, "exact", logger.FieldMatch, id)
			return domain.Found(id)
		}
	}

	for id, student := range r.ds.Students.All() {
		if strings.Contains(domain.Normalize(student.Name), q) {
			logger.Debugw("student matched", logger.FieldTier, "substring", logger.FieldMatch, id)
			return domain.Found(id)
		}
	}

	logger.Debugw("no student matched", logger.FieldQuery, query)
	return domain.NotFound[string]()
}

// ResolveProfessor returns the id of the first professor whose normalized
// name contains the normalized query.
func (r *Resolver) ResolveProfessor(query string) domain.Resolution[string] {
	q := domain.Normalize(query)
	for id, prof := range r.ds.Professors.All() {
		if strings.Contains(domain.Normalize(prof.Name), q) {
			logger.Debugw("professor matched", logger.FieldQuery, query, logger.FieldMatch, id)
			return domain.Found(id)
		}
	}
	return domain.NotFound[string]()
}

// ResolveModule returns the module of the first grade, scanning students in
// table order, whose normalized module name contains the normalized query.
// Modules without any recorded grade cannot be resolved.
func (r *Resolver) ResolveModule(query string) domain.Resolution[domain.ModuleRef] {
	q := domain.Normalize(query)
	for _, grades := range r.ds.Grades.All() {
		for _, g := range grades {
			if strings.Contains(domain.Normalize(g.Module), q) {
				logger.Debugw("module matched", logger.FieldQuery, query, logger.FieldMatch, g.ModuleID)
				return domain.Found(domain.ModuleRef{ID: g.ModuleID, Name: g.Module})
			}
		}
	}
	return domain.NotFound[domain.ModuleRef]()
}

// ResolveCourseExact returns the schedule key whose normalized form equals
// the normalized course name.
func (r *Resolver) ResolveCourseExact(courseName string) domain.Resolution[string] {
	q := domain.Normalize(courseName)
	for key := range r.ds.Schedule.All() {
		if domain.Normalize(key) == q {
			return domain.Found(key)
		}
	}
	return domain.NotFound[string]()
}

// ResolveCourse returns the first courses-table key whose normalized form
// contains the normalized course name.
func (r *Resolver) ResolveCourse(courseName string) domain.Resolution[string] {
	q := domain.Normalize(courseName)
	for key := range r.ds.Courses.All() {
		if strings.Contains(domain.Normalize(key), q) {
			return domain.Found(key)
		}
	}
	return domain.NotFound[string]()
}
