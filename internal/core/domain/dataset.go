package domain

// Dataset is the complete, frozen academic dataset.
// It is built once by a loader and passed by reference to every resolver
// and operation; nothing writes to it afterwards.
type Dataset struct {
	Students     Table[Student]
	Professors   Table[Professor]
	Grades       Table[[]Grade]
	Schedule     Table[[]ScheduleEntry]
	Courses      Table[Course]
	Syllabi      Table[string]
	News         Table[NewsArticle]
	Publications Table[[]Publication]
	Events       []Event
}

// DatasetStats summarises table sizes.
type DatasetStats struct {
	Students     int `json:"students"`
	Professors   int `json:"professors"`
	Grades       int `json:"grades"`
	Lectures     int `json:"lectures"`
	Courses      int `json:"courses"`
	Syllabi      int `json:"syllabi"`
	News         int `json:"news"`
	Publications int `json:"publications"`
	Events       int `json:"events"`
}

// Stats counts the records in each table. Grades, Lectures and
// Publications count list entries, not keys.
func (d *Dataset) Stats() DatasetStats {
	stats := DatasetStats{
		Students:   d.Students.Len(),
		Professors: d.Professors.Len(),
		Courses:    d.Courses.Len(),
		Syllabi:    d.Syllabi.Len(),
		News:       d.News.Len(),
		Events:     len(d.Events),
	}
	for _, grades := range d.Grades.All() {
		stats.Grades += len(grades)
	}
	for _, lectures := range d.Schedule.All() {
		stats.Lectures += len(lectures)
	}
	for _, pubs := range d.Publications.All() {
		stats.Publications += len(pubs)
	}
	return stats
}

// ProfessorName returns the display name for a professor id, or fallback
// when the id has no table entry.
func (d *Dataset) ProfessorName(profID, fallback string) string {
	if prof, ok := d.Professors.Get(profID); ok {
		return prof.Name
	}
	return fallback
}

// DanglingReference describes a foreign key without a matching row.
type DanglingReference struct {
	Table  string
	Key    string
	ProfID string
}

// DanglingProfessors lists grade and schedule entries whose prof_id has no
// professor. Such references are tolerated; joins fall back to a sentinel.
func (d *Dataset) DanglingProfessors() []DanglingReference {
	var out []DanglingReference
	for studentID, grades := range d.Grades.All() {
		for _, g := range grades {
			if !d.Professors.Has(g.ProfID) {
				out = append(out, DanglingReference{Table: "grades", Key: studentID, ProfID: g.ProfID})
			}
		}
	}
	for course, lectures := range d.Schedule.All() {
		for _, l := range lectures {
			if !d.Professors.Has(l.ProfID) {
				out = append(out, DanglingReference{Table: "schedule", Key: course, ProfID: l.ProfID})
			}
		}
	}
	return out
}
