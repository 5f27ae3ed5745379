// Package domain defines the core entities of the academic assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dataset: The frozen collection of academic tables
//   - Table: An insertion-ordered, read-only mapping from key to record
//   - Student, Professor, Grade, ScheduleEntry, Course: Relational records
//   - NewsArticle, Publication, Event: Flat records projected verbatim
//   - Resolution: The Found/NotFound outcome of entity resolution
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
