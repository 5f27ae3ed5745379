package mcp

import (
	"context"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
// Every method returns payload and err and records its argument.
type mockQueryService struct {
	payload  string
	err      error
	lastArg  string
	combined domain.CombinedQuery
	calls    []string
}

func (m *mockQueryService) record(method, arg string) (string, error) {
	m.calls = append(m.calls, method)
	m.lastArg = arg
	return m.payload, m.err
}

func (m *mockQueryService) StudentGrades(_ context.Context, query string) (string, error) {
	return m.record("StudentGrades", query)
}

func (m *mockQueryService) Schedule(_ context.Context, courseName string) (string, error) {
	return m.record("Schedule", courseName)
}

func (m *mockQueryService) AllProfessors(_ context.Context) (string, error) {
	return m.record("AllProfessors", "")
}

func (m *mockQueryService) ProfessorForModule(_ context.Context, moduleName string) (string, error) {
	return m.record("ProfessorForModule", moduleName)
}

func (m *mockQueryService) ProfessorInfo(_ context.Context, profName string) (string, error) {
	return m.record("ProfessorInfo", profName)
}

func (m *mockQueryService) Events(_ context.Context) (string, error) {
	return m.record("Events", "")
}

func (m *mockQueryService) Combined(_ context.Context, q domain.CombinedQuery) (string, error) {
	m.combined = q
	return m.record("Combined", "")
}

func (m *mockQueryService) Stats(_ context.Context) domain.DatasetStats {
	return domain.DatasetStats{}
}

// mockResourceService is a mock implementation of driving.ResourceService.
type mockResourceService struct {
	descriptors []domain.ResourceDescriptor
	listErr     error
	content     domain.ResourceContent
	readErr     error
	lastURI     string
}

func (m *mockResourceService) List(_ context.Context, kind domain.ResourceKind) ([]domain.ResourceDescriptor, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.ResourceDescriptor
	for _, d := range m.descriptors {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockResourceService) Read(ctx context.Context, _ domain.ResourceKind, key string) (domain.ResourceContent, error) {
	return m.ReadURI(ctx, key)
}

func (m *mockResourceService) ReadURI(_ context.Context, uri string) (domain.ResourceContent, error) {
	m.lastURI = uri
	return m.content, m.readErr
}
