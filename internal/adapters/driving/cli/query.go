package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

var (
	queryStudent   string
	queryProfessor string
	queryCourse    string
)

var gradesCmd = &cobra.Command{
	Use:   "grades [student]",
	Short: "Show the grades of a student",
	Long: `Shows the grades of the student matching the query. The query may be a
matriculation number, a full name or part of a name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.StudentGrades(ctx, args[0])
		})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [course]",
	Short: "Show the lecture schedule of a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.Schedule(ctx, args[0])
		})
	},
}

var professorsCmd = &cobra.Command{
	Use:   "professors",
	Short: "List all professors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.AllProfessors(ctx)
		})
	},
}

var professorCmd = &cobra.Command{
	Use:   "professor [name]",
	Short: "Show office and contact details of a professor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.ProfessorInfo(ctx, args[0])
		})
	},
}

var moduleCmd = &cobra.Command{
	Use:   "module [name]",
	Short: "Show which professor teaches a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.ProfessorForModule(ctx, args[0])
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List upcoming events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.Events(ctx)
		})
	},
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Combined query over students, professors and courses",
	Long: `Runs a combined query. All filters are optional:

  --student             grades of the student
  --student --professor grades of the student taught by the professor
  --professor           modules taught by the professor
  --course              the course record`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runQuery(cmd, func(ctx context.Context) (string, error) {
			return queryService.Combined(ctx, domain.CombinedQuery{
				StudentName:   queryStudent,
				ProfessorName: queryProfessor,
				CourseName:    queryCourse,
			})
		})
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryStudent, "student", "", "student name or id")
	queryCmd.Flags().StringVar(&queryProfessor, "professor", "", "professor name")
	queryCmd.Flags().StringVar(&queryCourse, "course", "", "course name")

	rootCmd.AddCommand(gradesCmd, scheduleCmd, professorsCmd, professorCmd, moduleCmd, eventsCmd, queryCmd)
}

// runQuery prints the payload of a query operation.
func runQuery(cmd *cobra.Command, op func(ctx context.Context) (string, error)) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	payload, err := op(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(payload)
	return nil
}
