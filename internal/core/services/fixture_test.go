package services

import (
	"github.com/dhbw-labs/academic-assistant/internal/adapters/driven/storage/memory"
	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

// fixtureDataset is a small campus used across service tests.
func fixtureDataset() *domain.Dataset {
	return memory.NewDatasetBuilder().
		Student("s1001", "Harsh").
		Student("s1002", "Anna Schmidt").
		Student("s1003", "Harsh Sharma").
		Student("s1004", "Lena Vogel").
		Professor(domain.Professor{ID: "p1", Name: "Dr. Kessel", Office: "B-204", Email: "kessel@dhbw.de"}).
		Professor(domain.Professor{ID: "p2", Name: "Prof. Dr. Müller", Office: "C-101", Email: "mueller@dhbw.de"}).
		Professor(domain.Professor{ID: "p3", Name: "Dr. Weber", Office: "A-010", Email: "weber@dhbw.de"}).
		Grade("s1001", domain.Grade{ModuleID: "m1", Module: "Web Engineering", ProfID: "p1", Grade: "1.3"}).
		Grade("s1001", domain.Grade{ModuleID: "m2", Module: "Datenbanken", ProfID: "p2", Grade: "2.0"}).
		Grade("s1001", domain.Grade{ModuleID: "m9", Module: "Ethik", ProfID: "p404", Grade: "1.0"}).
		Grade("s1002", domain.Grade{ModuleID: "m1", Module: "Web Engineering", ProfID: "p1", Grade: "2.3"}).
		Grade("s1002", domain.Grade{ModuleID: "m3", Module: "Cloud Computing", ProfID: "p1", Grade: "1.7"}).
		Grade("s1003", domain.Grade{ModuleID: "m2", Module: "Datenbanken", ProfID: "p2", Grade: "3.0"}).
		Lecture("Wirtschaftsinformatik", domain.ScheduleEntry{Module: "Web Engineering", Day: "Monday", Time: "09:00", Room: "B-301", ProfID: "p1"}).
		Lecture("Wirtschaftsinformatik", domain.ScheduleEntry{Module: "Datenbanken", Day: "Tuesday", Time: "13:00", Room: "C-002", ProfID: "p2"}).
		Lecture("Informatik", domain.ScheduleEntry{Module: "Gastvortrag", Day: "Friday", Time: "10:00", Room: "Aula", ProfID: "p77"}).
		Course("Wirtschaftsinformatik", domain.Course{Name: "Wirtschaftsinformatik", Degree: "B.Sc.", Semester: "6"}).
		Course("Informatik", domain.Course{Name: "Informatik", Degree: "B.Sc.", Semester: "6"}).
		Syllabus("webeng", "Web Engineering: HTTP, REST, SPA architectures.").
		Syllabus("cloud", "Cloud Computing: IaaS, PaaS, containers.").
		News("n1", domain.NewsArticle{Date: "2026-01-15", Headline: "New Campus Library Opening", Category: "Campus Life"}).
		News("n2", domain.NewsArticle{Date: "2025-12-10", Headline: "Research Grant Awarded", Category: "Research"}).
		Publication("p2", domain.Publication{Title: "Datenbanken im Wandel", Year: "2024"}).
		Publication("p9", domain.Publication{Title: "Orphaned Paper", Year: "2020"}).
		Event(domain.Event{Name: "Karrieremesse", Date: "2025-10-26"}).
		Event(domain.Event{Name: "Hackathon", Date: "2025-11-14", Location: "Aula"}).
		Build()
}
