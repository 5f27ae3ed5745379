package file

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driven"
)

//go:embed sample/db.json
var sampleDataset []byte

// Ensure DatasetLoader implements the interface.
var _ driven.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader reads a dataset document from disk.
type DatasetLoader struct {
	path string
}

// NewDatasetLoader creates a loader for path.
// An empty path selects the embedded sample dataset.
func NewDatasetLoader(path string) *DatasetLoader {
	return &DatasetLoader{path: path}
}

// Path returns the configured file path, empty for the sample dataset.
func (l *DatasetLoader) Path() string {
	return l.path
}

// Load reads and parses the dataset.
func (l *DatasetLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := sampleDataset
	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
	}

	return Parse(data)
}

// Sample returns a copy of the embedded sample dataset document.
func Sample() []byte {
	return bytes.Clone(sampleDataset)
}

// document mirrors the on-disk layout. Keyed tables are decoded through
// orderedMap so their key order survives.
type document struct {
	Students     orderedMap[domain.Student]         `yaml:"students"`
	Professors   orderedMap[domain.Professor]       `yaml:"professors"`
	Grades       orderedMap[[]domain.Grade]         `yaml:"grades"`
	Schedule     orderedMap[[]domain.ScheduleEntry] `yaml:"schedule"`
	Courses      orderedMap[domain.Course]          `yaml:"courses"`
	Syllabi      orderedMap[string]                 `yaml:"syllabi"`
	News         orderedMap[domain.NewsArticle]     `yaml:"news"`
	Publications orderedMap[[]domain.Publication]   `yaml:"publications"`
	Events       []domain.Event                     `yaml:"events"`
}

// Parse decodes a JSON or YAML dataset document.
func Parse(data []byte) (*domain.Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrDatasetInvalid)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetInvalid, err)
	}

	return doc.dataset(), nil
}

// dataset copies keys into the records that carry them.
func (d *document) dataset() *domain.Dataset {
	students := d.Students.entries
	for i := range students {
		students[i].Value.ID = students[i].Key
	}

	professors := d.Professors.entries
	for i := range professors {
		professors[i].Value.ID = professors[i].Key
	}

	grades := d.Grades.entries
	for i := range grades {
		for j := range grades[i].Value {
			grades[i].Value[j].StudentID = grades[i].Key
		}
	}

	schedule := d.Schedule.entries
	for i := range schedule {
		for j := range schedule[i].Value {
			if schedule[i].Value[j].Course == "" {
				schedule[i].Value[j].Course = schedule[i].Key
			}
		}
	}

	news := d.News.entries
	for i := range news {
		news[i].Value.ID = news[i].Key
	}

	events := d.Events
	if events == nil {
		events = []domain.Event{}
	}

	return &domain.Dataset{
		Students:     domain.NewTable(students...),
		Professors:   domain.NewTable(professors...),
		Grades:       domain.NewTable(grades...),
		Schedule:     domain.NewTable(schedule...),
		Courses:      domain.NewTable(d.Courses.entries...),
		Syllabi:      domain.NewTable(d.Syllabi.entries...),
		News:         domain.NewTable(news...),
		Publications: domain.NewTable(d.Publications.entries...),
		Events:       events,
	}
}
