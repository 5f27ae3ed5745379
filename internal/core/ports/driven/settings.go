package driven

import "github.com/dhbw-labs/academic-assistant/internal/core/domain"

// SettingsStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type SettingsStore interface {
	// Load reads settings, returning defaults when nothing is stored.
	Load() (domain.Settings, error)

	// Save persists settings.
	Save(s domain.Settings) error

	// Path returns the configuration file path.
	Path() string
}
