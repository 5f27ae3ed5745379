// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DatasetLoader: Produces the frozen dataset once at startup
//     (file, SQLite snapshot or in-memory fixture)
//   - SettingsStore: Application configuration
//
// # Optional Interfaces
//
//   - SnapshotWriter: Persists a dataset into another store (SQLite import)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
