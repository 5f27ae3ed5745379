// Package memory provides in-memory implementations of driven port interfaces.
//
// Adapters:
//   - DatasetBuilder: Assembles datasets in code (fixtures, tests)
//   - DatasetLoader: Serves a prebuilt dataset through the loader port
//   - SettingsStore: Volatile settings storage
package memory
