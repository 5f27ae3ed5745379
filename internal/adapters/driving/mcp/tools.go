package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

// Tool names.
const (
	ToolStudentGrades      = "get_student_grades"
	ToolSchedule           = "get_schedule"
	ToolAllProfessors      = "get_all_professors"
	ToolProfessorForModule = "get_professor_for_module"
	ToolProfessorInfo      = "get_professor_info"
	ToolEvents             = "get_events"
	ToolQueryAcademicData  = "query_academic_data"
)

// StudentGradesInput is the input schema for get_student_grades.
type StudentGradesInput struct {
	Query string `json:"query" jsonschema:"the student's name or matriculation number"`
}

// ScheduleInput is the input schema for get_schedule.
type ScheduleInput struct {
	CourseName string `json:"course_name" jsonschema:"the course name, e.g. Wirtschaftsinformatik"`
}

// ModuleInput is the input schema for get_professor_for_module.
type ModuleInput struct {
	ModuleName string `json:"module_name" jsonschema:"the module name or part of it"`
}

// ProfessorInput is the input schema for get_professor_info.
type ProfessorInput struct {
	ProfName string `json:"prof_name" jsonschema:"the professor's name or part of it"`
}

// QueryInput is the input schema for query_academic_data.
type QueryInput struct {
	StudentName   string `json:"student_name,omitempty" jsonschema:"filter by student name or id"`
	ProfessorName string `json:"professor_name,omitempty" jsonschema:"filter by professor name"`
	CourseName    string `json:"course_name,omitempty" jsonschema:"look up a course by name"`
}

// NoInput is the input schema for tools without arguments.
type NoInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolStudentGrades,
		Description: "Get the grades of a student by name or matriculation number",
	}, logged(ToolStudentGrades, s.handleStudentGrades))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolSchedule,
		Description: "Get the lecture schedule of a course",
	}, logged(ToolSchedule, s.handleSchedule))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolAllProfessors,
		Description: "List the names of all professors",
	}, logged(ToolAllProfessors, s.handleAllProfessors))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolProfessorForModule,
		Description: "Find the professor who teaches a module",
	}, logged(ToolProfessorForModule, s.handleProfessorForModule))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolProfessorInfo,
		Description: "Get office and contact details of a professor",
	}, logged(ToolProfessorInfo, s.handleProfessorInfo))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolEvents,
		Description: "List upcoming university events",
	}, logged(ToolEvents, s.handleEvents))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolQueryAcademicData,
		Description: "Combined query over students, professors and courses; all filters are optional",
	}, logged(ToolQueryAcademicData, s.handleQueryAcademicData))
}

// logged wraps a tool handler with a per-call request id and timing.
func logged[In any](tool string, h mcp.ToolHandlerFor[In, any]) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		requestID := uuid.NewString()
		start := time.Now()

		res, out, err := h(ctx, req, in)

		fields := []any{
			logger.FieldRequestID, requestID,
			logger.FieldOperation, tool,
			logger.FieldDurationMS, time.Since(start).Milliseconds(),
		}
		if err != nil {
			logger.Warnw("tool call failed", append(fields, logger.FieldError, err)...)
			return res, out, err
		}
		logger.Debugw("tool call", fields...)
		return res, out, nil
	}
}

// textResult wraps a payload as a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// reply converts a service payload into a tool result.
func reply(text string, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (s *Server) handleStudentGrades(
	ctx context.Context, _ *mcp.CallToolRequest, input StudentGradesInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.StudentGrades(ctx, input.Query))
}

func (s *Server) handleSchedule(
	ctx context.Context, _ *mcp.CallToolRequest, input ScheduleInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.Schedule(ctx, input.CourseName))
}

func (s *Server) handleAllProfessors(
	ctx context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.AllProfessors(ctx))
}

func (s *Server) handleProfessorForModule(
	ctx context.Context, _ *mcp.CallToolRequest, input ModuleInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.ProfessorForModule(ctx, input.ModuleName))
}

func (s *Server) handleProfessorInfo(
	ctx context.Context, _ *mcp.CallToolRequest, input ProfessorInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.ProfessorInfo(ctx, input.ProfName))
}

func (s *Server) handleEvents(
	ctx context.Context, _ *mcp.CallToolRequest, _ NoInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.Events(ctx))
}

func (s *Server) handleQueryAcademicData(
	ctx context.Context, _ *mcp.CallToolRequest, input QueryInput,
) (*mcp.CallToolResult, any, error) {
	return reply(s.ports.Query.Combined(ctx, domain.CombinedQuery{
		StudentName:   input.StudentName,
		ProfessorName: input.ProfessorName,
		CourseName:    input.CourseName,
	}))
}
