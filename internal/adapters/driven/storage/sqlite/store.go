package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.DatasetLoader  = (*Store)(nil)
	_ driven.SnapshotWriter = (*Store)(nil)
)

// Store is a SQLite-backed dataset snapshot.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the database at path.
// If path is empty, defaults to ~/.academic-assistant/data/academic.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".academic-assistant", "data", "academic.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every embedded NNN_name.up.sql newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// snapshotTables lists every dataset table, cleared before an import.
var snapshotTables = []string{
	"students", "professors", "grades", "schedule", "courses",
	"syllabi", "news", "publications", "events",
}

// Import replaces the stored snapshot with ds in a single transaction.
func (s *Store) Import(ctx context.Context, ds *domain.Dataset) (err error) {
	if ds == nil {
		return domain.ErrDatasetUnavailable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range snapshotTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	steps := []func(context.Context, *sql.Tx, *domain.Dataset) error{
		insertStudents, insertProfessors, insertGrades, insertSchedule,
		insertCourses, insertSyllabi, insertNews, insertPublications, insertEvents,
	}
	for _, step := range steps {
		if err = step(ctx, tx, ds); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func insertStudents(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	pos := 0
	for id, st := range ds.Students.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO students (id, position, name) VALUES (?, ?, ?)",
			id, pos, st.Name); err != nil {
			return fmt.Errorf("inserting student %s: %w", id, err)
		}
		pos++
	}
	return nil
}

func insertProfessors(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	pos := 0
	for id, p := range ds.Professors.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO professors (id, position, name, office, email) VALUES (?, ?, ?, ?, ?)",
			id, pos, p.Name, p.Office, p.Email); err != nil {
			return fmt.Errorf("inserting professor %s: %w", id, err)
		}
		pos++
	}
	return nil
}

func insertGrades(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	keyPos := 0
	for studentID, grades := range ds.Grades.All() {
		for i, g := range grades {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO grades (student_id, key_position, position, module_id, module, prof_id, grade)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				studentID, keyPos, i, g.ModuleID, g.Module, g.ProfID, g.Grade); err != nil {
				return fmt.Errorf("inserting grade for %s: %w", studentID, err)
			}
		}
		keyPos++
	}
	return nil
}

func insertSchedule(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	keyPos := 0
	for course, lectures := range ds.Schedule.All() {
		for i, l := range lectures {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO schedule (course, key_position, position, module, day, time, room, prof_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				course, keyPos, i, l.Module, l.Day, l.Time, l.Room, l.ProfID); err != nil {
				return fmt.Errorf("inserting lecture for %s: %w", course, err)
			}
		}
		keyPos++
	}
	return nil
}

func insertCourses(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	pos := 0
	for key, c := range ds.Courses.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO courses (key, position, name, degree, semester, description) VALUES (?, ?, ?, ?, ?, ?)",
			key, pos, c.Name, c.Degree, c.Semester, c.Description); err != nil {
			return fmt.Errorf("inserting course %s: %w", key, err)
		}
		pos++
	}
	return nil
}

func insertSyllabi(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	pos := 0
	for code, text := range ds.Syllabi.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO syllabi (code, position, text) VALUES (?, ?, ?)",
			code, pos, text); err != nil {
			return fmt.Errorf("inserting syllabus %s: %w", code, err)
		}
		pos++
	}
	return nil
}

func insertNews(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	pos := 0
	for id, a := range ds.News.All() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO news (id, position, date, headline, category, body) VALUES (?, ?, ?, ?, ?, ?)",
			id, pos, a.Date, a.Headline, a.Category, a.Body); err != nil {
			return fmt.Errorf("inserting news %s: %w", id, err)
		}
		pos++
	}
	return nil
}

func insertPublications(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	keyPos := 0
	for profID, pubs := range ds.Publications.All() {
		for i, p := range pubs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO publications (prof_id, key_position, position, title, year, venue)
				VALUES (?, ?, ?, ?, ?, ?)`,
				profID, keyPos, i, p.Title, p.Year, p.Venue); err != nil {
				return fmt.Errorf("inserting publication for %s: %w", profID, err)
			}
		}
		keyPos++
	}
	return nil
}

func insertEvents(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	for i, e := range ds.Events {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO events (position, name, date, location, description) VALUES (?, ?, ?, ?, ?)",
			i, e.Name, e.Date, e.Location, e.Description); err != nil {
			return fmt.Errorf("inserting event %s: %w", e.Name, err)
		}
	}
	return nil
}

// Load reads the stored snapshot. An empty database yields
// ErrDatasetUnavailable.
func (s *Store) Load(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}
	var err error

	if ds.Students, err = loadStudents(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Professors, err = loadProfessors(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Grades, err = loadGrades(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Schedule, err = loadSchedule(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Courses, err = loadCourses(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Syllabi, err = loadSyllabi(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.News, err = loadNews(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Publications, err = loadPublications(ctx, s.db); err != nil {
		return nil, err
	}
	if ds.Events, err = loadEvents(ctx, s.db); err != nil {
		return nil, err
	}

	if ds.Stats() == (domain.DatasetStats{}) {
		return nil, fmt.Errorf("%w: no snapshot in %s", domain.ErrDatasetUnavailable, s.path)
	}
	return ds, nil
}

// scanRows runs query and collects one entry per row.
func scanRows[V any](
	ctx context.Context, db *sql.DB, query string,
	scan func(*sql.Rows) (domain.Entry[V], error),
) ([]domain.Entry[V], error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var out []domain.Entry[V]
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return out, nil
}

// group folds consecutive rows sharing a key into list entries.
func group[V any](rows []domain.Entry[V]) []domain.Entry[[]V] {
	var out []domain.Entry[[]V]
	for _, r := range rows {
		if n := len(out); n > 0 && out[n-1].Key == r.Key {
			out[n-1].Value = append(out[n-1].Value, r.Value)
			continue
		}
		out = append(out, domain.Entry[[]V]{Key: r.Key, Value: []V{r.Value}})
	}
	return out
}

func loadStudents(ctx context.Context, db *sql.DB) (domain.Table[domain.Student], error) {
	entries, err := scanRows(ctx, db, "SELECT id, name FROM students ORDER BY position",
		func(rows *sql.Rows) (domain.Entry[domain.Student], error) {
			var st domain.Student
			err := rows.Scan(&st.ID, &st.Name)
			return domain.Entry[domain.Student]{Key: st.ID, Value: st}, err
		})
	return domain.NewTable(entries...), err
}

func loadProfessors(ctx context.Context, db *sql.DB) (domain.Table[domain.Professor], error) {
	entries, err := scanRows(ctx, db, "SELECT id, name, office, email FROM professors ORDER BY position",
		func(rows *sql.Rows) (domain.Entry[domain.Professor], error) {
			var p domain.Professor
			err := rows.Scan(&p.ID, &p.Name, &p.Office, &p.Email)
			return domain.Entry[domain.Professor]{Key: p.ID, Value: p}, err
		})
	return domain.NewTable(entries...), err
}

func loadGrades(ctx context.Context, db *sql.DB) (domain.Table[[]domain.Grade], error) {
	rows, err := scanRows(ctx, db, `
		SELECT student_id, module_id, module, prof_id, grade
		FROM grades ORDER BY key_position, position`,
		func(rows *sql.Rows) (domain.Entry[domain.Grade], error) {
			var g domain.Grade
			err := rows.Scan(&g.StudentID, &g.ModuleID, &g.Module, &g.ProfID, &g.Grade)
			return domain.Entry[domain.Grade]{Key: g.StudentID, Value: g}, err
		})
	return domain.NewTable(group(rows)...), err
}

func loadSchedule(ctx context.Context, db *sql.DB) (domain.Table[[]domain.ScheduleEntry], error) {
	rows, err := scanRows(ctx, db, `
		SELECT course, module, day, time, room, prof_id
		FROM schedule ORDER BY key_position, position`,
		func(rows *sql.Rows) (domain.Entry[domain.ScheduleEntry], error) {
			var l domain.ScheduleEntry
			err := rows.Scan(&l.Course, &l.Module, &l.Day, &l.Time, &l.Room, &l.ProfID)
			return domain.Entry[domain.ScheduleEntry]{Key: l.Course, Value: l}, err
		})
	return domain.NewTable(group(rows)...), err
}

func loadCourses(ctx context.Context, db *sql.DB) (domain.Table[domain.Course], error) {
	entries, err := scanRows(ctx, db, `
		SELECT key, name, degree, semester, description
		FROM courses ORDER BY position`,
		func(rows *sql.Rows) (domain.Entry[domain.Course], error) {
			var key string
			var c domain.Course
			err := rows.Scan(&key, &c.Name, &c.Degree, &c.Semester, &c.Description)
			return domain.Entry[domain.Course]{Key: key, Value: c}, err
		})
	return domain.NewTable(entries...), err
}

func loadSyllabi(ctx context.Context, db *sql.DB) (domain.Table[string], error) {
	entries, err := scanRows(ctx, db, "SELECT code, text FROM syllabi ORDER BY position",
		func(rows *sql.Rows) (domain.Entry[string], error) {
			var e domain.Entry[string]
			err := rows.Scan(&e.Key, &e.Value)
			return e, err
		})
	return domain.NewTable(entries...), err
}

func loadNews(ctx context.Context, db *sql.DB) (domain.Table[domain.NewsArticle], error) {
	entries, err := scanRows(ctx, db, `
		SELECT id, date, headline, category, body
		FROM news ORDER BY position`,
		func(rows *sql.Rows) (domain.Entry[domain.NewsArticle], error) {
			var a domain.NewsArticle
			err := rows.Scan(&a.ID, &a.Date, &a.Headline, &a.Category, &a.Body)
			return domain.Entry[domain.NewsArticle]{Key: a.ID, Value: a}, err
		})
	return domain.NewTable(entries...), err
}

func loadPublications(ctx context.Context, db *sql.DB) (domain.Table[[]domain.Publication], error) {
	rows, err := scanRows(ctx, db, `
		SELECT prof_id, title, year, venue
		FROM publications ORDER BY key_position, position`,
		func(rows *sql.Rows) (domain.Entry[domain.Publication], error) {
			var profID string
			var p domain.Publication
			err := rows.Scan(&profID, &p.Title, &p.Year, &p.Venue)
			return domain.Entry[domain.Publication]{Key: profID, Value: p}, err
		})
	return domain.NewTable(group(rows)...), err
}

func loadEvents(ctx context.Context, db *sql.DB) ([]domain.Event, error) {
	rows, err := scanRows(ctx, db, `
		SELECT name, date, location, description
		FROM events ORDER BY position`,
		func(rows *sql.Rows) (domain.Entry[domain.Event], error) {
			var e domain.Event
			err := rows.Scan(&e.Name, &e.Date, &e.Location, &e.Description)
			return domain.Entry[domain.Event]{Value: e}, err
		})
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, r.Value)
	}
	return events, nil
}

// IsSnapshotPath reports whether path names a SQLite snapshot rather than a
// JSON or YAML document.
func IsSnapshotPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
