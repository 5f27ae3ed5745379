// Package sqlite stores dataset snapshots in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A snapshot is written with Import and read back with Load,
// so the same Store serves as both a driven.SnapshotWriter and a
// driven.DatasetLoader.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Keyed tables carry explicit position columns so the
// original key order survives the round trip; resolvers rely on it for
// first-match tie-breaks.
//
// # Data Location
//
// By default, the database is stored at ~/.academic-assistant/data/academic.db
package sqlite
