package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

func TestDatasetBuilder_PreservesOrder(t *testing.T) {
	ds := NewDatasetBuilder().
		Student("s2", "Zoe").
		Student("s1", "Adam").
		Grade("s2", domain.Grade{ModuleID: "m1", Module: "Web Engineering", ProfID: "p1", Grade: "1.3"}).
		Grade("s1", domain.Grade{ModuleID: "m2", Module: "Databases", ProfID: "p1", Grade: "2.0"}).
		Grade("s2", domain.Grade{ModuleID: "m3", Module: "Cloud", ProfID: "p2", Grade: "1.7"}).
		Build()

	assert.Equal(t, []string{"s2", "s1"}, ds.Students.Keys())
	assert.Equal(t, []string{"s2", "s1"}, ds.Grades.Keys())

	grades, ok := ds.Grades.Get("s2")
	require.True(t, ok)
	require.Len(t, grades, 2)
	assert.Equal(t, "m1", grades[0].ModuleID)
	assert.Equal(t, "m3", grades[1].ModuleID)
	assert.Equal(t, "s2", grades[0].StudentID)
}

func TestDatasetBuilder_AllTables(t *testing.T) {
	ds := NewDatasetBuilder().
		Professor(domain.Professor{ID: "p1", Name: "Kessel"}).
		Lecture("Informatik", domain.ScheduleEntry{Module: "Web Engineering", ProfID: "p1"}).
		Course("Informatik", domain.Course{Name: "Informatik"}).
		Syllabus("webeng", "HTTP, REST").
		News("n1", domain.NewsArticle{Headline: "Library"}).
		Publication("p1", domain.Publication{Title: "On Tests"}).
		Event(domain.Event{Name: "Karrieremesse"}).
		Build()

	stats := ds.Stats()
	assert.Equal(t, 1, stats.Professors)
	assert.Equal(t, 1, stats.Lectures)
	assert.Equal(t, 1, stats.Courses)
	assert.Equal(t, 1, stats.Syllabi)
	assert.Equal(t, 1, stats.News)
	assert.Equal(t, 1, stats.Publications)
	assert.Equal(t, 1, stats.Events)

	lectures, _ := ds.Schedule.Get("Informatik")
	assert.Equal(t, "Informatik", lectures[0].Course)
	article, _ := ds.News.Get("n1")
	assert.Equal(t, "n1", article.ID)
}

func TestDatasetBuilder_BuildIsIsolated(t *testing.T) {
	b := NewDatasetBuilder().Event(domain.Event{Name: "A"})
	first := b.Build()
	b.Event(domain.Event{Name: "B"})

	assert.Len(t, first.Events, 1)
	assert.Len(t, b.Build().Events, 2)
}

func TestDatasetLoader_Load(t *testing.T) {
	ds := NewDatasetBuilder().Student("s1", "Harsh").Build()

	got, err := NewDatasetLoader(ds).Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, ds, got)
}

func TestDatasetLoader_Nil(t *testing.T) {
	_, err := NewDatasetLoader(nil).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestDatasetLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDatasetLoader(&domain.Dataset{}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettingsStore(t *testing.T) {
	store := NewSettingsStore(domain.DefaultSettings())

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)

	s.Server.Port = 3000
	require.NoError(t, store.Save(s))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, got.Server.Port)
	assert.Empty(t, store.Path())

	s.Server.Port = -5
	assert.ErrorIs(t, store.Save(s), domain.ErrInvalidInput)
}
