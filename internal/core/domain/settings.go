package domain

// Settings is the effective application configuration.
type Settings struct {
	Dataset DatasetSettings `toml:"dataset"`
	Server  ServerSettings  `toml:"server"`
	Log     LogSettings     `toml:"log"`
}

// DatasetSettings selects the dataset source.
type DatasetSettings struct {
	// Path is a JSON/YAML file or a SQLite snapshot (*.db, *.sqlite).
	// Empty selects the embedded sample dataset.
	Path string `toml:"path"`
}

// ServerSettings configures the MCP transport.
type ServerSettings struct {
	// Port selects HTTP on the given port; 0 selects stdio.
	Port int `toml:"port"`
}

// LogSettings configures diagnostics.
type LogSettings struct {
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{}
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		return ErrInvalidInput
	}
	return nil
}
