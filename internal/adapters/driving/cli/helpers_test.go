package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/memory"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/services"
	"github.com/dhbw-labs/academic-assistant/internal/logger"
)

func testDataset() *domain.Dataset {
	return memory.NewDatasetBuilder().
		Student("s1001", "Harsh").
		Student("s1002", "Anna Schmidt").
		Professor(domain.Professor{ID: "p1", Name: "Dr. Kessel", Office: "B-204"}).
		Professor(domain.Professor{ID: "p2", Name: "Prof. Dr. Müller", Office: "C-101"}).
		Grade("s1001", domain.Grade{ModuleID: "webeng", Module: "Web Engineering", ProfID: "p1", Grade: "1.3"}).
		Grade("s1002", domain.Grade{ModuleID: "cloud", Module: "Cloud Computing", ProfID: "p2", Grade: "2.0"}).
		Lecture("Informatik", domain.ScheduleEntry{Module: "Web Engineering", Day: "Monday", ProfID: "p1"}).
		Course("Informatik", domain.Course{Name: "Informatik", Degree: "B.Sc."}).
		Syllabus("webeng", "HTTP and REST").
		News("n1", domain.NewsArticle{Headline: "New Campus Library Opening"}).
		Publication("p2", domain.Publication{Title: "Paper"}).
		Event(domain.Event{Name: "Karrieremesse", Date: "2025-10-26"}).
		Build()
}

// setupTestServices injects services over testDataset and isolates the
// persistent flags. The returned function restores the previous state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldQuery, oldResource, oldDataset := queryService, resourceService, activeDataset
	oldConfig, oldDatasetPath, oldVerbose := configPath, datasetPath, verbose

	ds := testDataset()
	activeDataset = ds
	queryService = services.NewQueryService(ds)
	resourceService = services.NewResourceService(ds)
	configPath = filepath.Join(t.TempDir(), "config.toml")
	datasetPath = ""
	verbose = false
	queryStudent, queryProfessor, queryCourse = "", "", ""

	return func() {
		queryService, resourceService, activeDataset = oldQuery, oldResource, oldDataset
		configPath, datasetPath, verbose = oldConfig, oldDatasetPath, oldVerbose
		logger.SetVerbose(false)
	}
}

// clearServices forces the next command to load the dataset itself.
func clearServices() {
	queryService = nil
	resourceService = nil
	activeDataset = nil
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
