package domain

// Student is an enrolled student. ID is the matriculation number and the
// key of the students table.
type Student struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Professor is a member of the teaching staff.
type Professor struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Office string `json:"office,omitempty" yaml:"office"`
	Email  string `json:"email,omitempty" yaml:"email"`
}

// Grade is a single examination result of a student in a module.
// Grade is kept textually ("1.3") exactly as recorded.
type Grade struct {
	StudentID string `json:"student_id,omitempty" yaml:"student_id"`
	ModuleID  string `json:"module_id" yaml:"module_id"`
	Module    string `json:"module" yaml:"module"`
	ProfID    string `json:"prof_id" yaml:"prof_id"`
	Grade     string `json:"grade" yaml:"grade"`
}

// ScheduleEntry is one lecture slot of a course.
type ScheduleEntry struct {
	Course string `json:"course,omitempty" yaml:"course"`
	Module string `json:"module,omitempty" yaml:"module"`
	Day    string `json:"day,omitempty" yaml:"day"`
	Time   string `json:"time,omitempty" yaml:"time"`
	Room   string `json:"room,omitempty" yaml:"room"`
	ProfID string `json:"prof_id" yaml:"prof_id"`
}

// Course describes a degree programme ("Wirtschaftsinformatik").
type Course struct {
	Name        string `json:"name" yaml:"name"`
	Degree      string `json:"degree,omitempty" yaml:"degree"`
	Semester    string `json:"semester,omitempty" yaml:"semester"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// NewsArticle is a campus news item.
type NewsArticle struct {
	ID       string `json:"id,omitempty" yaml:"id"`
	Date     string `json:"date,omitempty" yaml:"date"`
	Headline string `json:"headline" yaml:"headline"`
	Category string `json:"category,omitempty" yaml:"category"`
	Body     string `json:"body,omitempty" yaml:"body"`
}

// Publication is a research output of a professor.
type Publication struct {
	Title string `json:"title" yaml:"title"`
	Year  string `json:"year,omitempty" yaml:"year"`
	Venue string `json:"venue,omitempty" yaml:"venue"`
}

// Event is an upcoming university event.
type Event struct {
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date,omitempty" yaml:"date"`
	Location    string `json:"location,omitempty" yaml:"location"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// ModuleRef identifies a module as derived from grade records.
type ModuleRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AnnotatedGrade is a grade joined with its professor's display name.
type AnnotatedGrade struct {
	Grade
	ProfessorName string `json:"professor_name"`
}

// AnnotatedLecture is a schedule entry joined with its professor's display name.
type AnnotatedLecture struct {
	ScheduleEntry
	ProfessorName string `json:"professor_name"`
}

// ModuleProfessor answers which professor teaches a module.
type ModuleProfessor struct {
	Module    string `json:"module"`
	Professor string `json:"professor"`
}

// CombinedQuery holds the optional filters of a combined query.
// Empty strings mean the filter was not given.
type CombinedQuery struct {
	StudentName   string
	ProfessorName string
	CourseName    string
}

// CombinedResult is the payload of a combined query.
// Results holds AnnotatedGrade, module names or Course values depending on
// which filters resolved.
type CombinedResult struct {
	QueryDescription string `json:"queryDescription"`
	Results          []any  `json:"results"`
}

// Display sentinels substituted for dangling professor references.
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
)
