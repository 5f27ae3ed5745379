package memory

import (
	"context"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driven"
)

// Ensure DatasetLoader implements the interface.
var _ driven.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader serves a dataset that was built in memory.
type DatasetLoader struct {
	ds *domain.Dataset
}

// NewDatasetLoader wraps ds.
func NewDatasetLoader(ds *domain.Dataset) *DatasetLoader {
	return &DatasetLoader{ds: ds}
}

// Load returns the wrapped dataset.
func (l *DatasetLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.ds == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	return l.ds, nil
}

// orderedLists accumulates keyed lists in first-seen key order.
type orderedLists[V any] struct {
	keys []string
	rows map[string][]V
}

func (o *orderedLists[V]) add(key string, v V) {
	if o.rows == nil {
		o.rows = make(map[string][]V)
	}
	if _, ok := o.rows[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.rows[key] = append(o.rows[key], v)
}

func (o *orderedLists[V]) table() domain.Table[[]V] {
	entries := make([]domain.Entry[[]V], 0, len(o.keys))
	for _, k := range o.keys {
		list := make([]V, len(o.rows[k]))
		copy(list, o.rows[k])
		entries = append(entries, domain.Entry[[]V]{Key: k, Value: list})
	}
	return domain.NewTable(entries...)
}

// DatasetBuilder assembles a dataset record by record, preserving the
// order in which keys are first added.
type DatasetBuilder struct {
	students     []domain.Entry[domain.Student]
	professors   []domain.Entry[domain.Professor]
	courses      []domain.Entry[domain.Course]
	syllabi      []domain.Entry[string]
	news         []domain.Entry[domain.NewsArticle]
	grades       orderedLists[domain.Grade]
	schedule     orderedLists[domain.ScheduleEntry]
	publications orderedLists[domain.Publication]
	events       []domain.Event
}

// NewDatasetBuilder creates an empty builder.
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{}
}

// Student adds a student.
func (b *DatasetBuilder) Student(id, name string) *DatasetBuilder {
	b.students = append(b.students, domain.Entry[domain.Student]{
		Key:   id,
		Value: domain.Student{ID: id, Name: name},
	})
	return b
}

// Professor adds a professor keyed by p.ID.
func (b *DatasetBuilder) Professor(p domain.Professor) *DatasetBuilder {
	b.professors = append(b.professors, domain.Entry[domain.Professor]{Key: p.ID, Value: p})
	return b
}

// Grade appends a grade to the student's list.
func (b *DatasetBuilder) Grade(studentID string, g domain.Grade) *DatasetBuilder {
	g.StudentID = studentID
	b.grades.add(studentID, g)
	return b
}

// Lecture appends a schedule entry to the course's list.
func (b *DatasetBuilder) Lecture(course string, e domain.ScheduleEntry) *DatasetBuilder {
	e.Course = course
	b.schedule.add(course, e)
	return b
}

// Course adds a course record.
func (b *DatasetBuilder) Course(key string, c domain.Course) *DatasetBuilder {
	b.courses = append(b.courses, domain.Entry[domain.Course]{Key: key, Value: c})
	return b
}

// Syllabus adds a syllabus text.
func (b *DatasetBuilder) Syllabus(code, text string) *DatasetBuilder {
	b.syllabi = append(b.syllabi, domain.Entry[string]{Key: code, Value: text})
	return b
}

// News adds an article keyed by id.
func (b *DatasetBuilder) News(id string, a domain.NewsArticle) *DatasetBuilder {
	a.ID = id
	b.news = append(b.news, domain.Entry[domain.NewsArticle]{Key: id, Value: a})
	return b
}

// Publication appends a publication to the professor's list.
func (b *DatasetBuilder) Publication(profID string, p domain.Publication) *DatasetBuilder {
	b.publications.add(profID, p)
	return b
}

// Event appends an event.
func (b *DatasetBuilder) Event(e domain.Event) *DatasetBuilder {
	b.events = append(b.events, e)
	return b
}

// Build freezes the accumulated records into a dataset.
func (b *DatasetBuilder) Build() *domain.Dataset {
	events := make([]domain.Event, len(b.events))
	copy(events, b.events)

	return &domain.Dataset{
		Students:     domain.NewTable(b.students...),
		Professors:   domain.NewTable(b.professors...),
		Grades:       b.grades.table(),
		Schedule:     b.schedule.table(),
		Courses:      domain.NewTable(b.courses...),
		Syllabi:      domain.NewTable(b.syllabi...),
		News:         domain.NewTable(b.news...),
		Publications: b.publications.table(),
		Events:       events,
	}
}
