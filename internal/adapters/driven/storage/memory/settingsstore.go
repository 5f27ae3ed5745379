package memory

import (
	"sync"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
	"github.com/dhbw-labs/academic-assistant/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore for testing.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsStore creates a store holding s.
func NewSettingsStore(s domain.Settings) *SettingsStore {
	return &SettingsStore{settings: s}
}

// Load returns the stored settings.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Save replaces the stored settings.
func (s *SettingsStore) Save(settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

// Path returns an empty string; nothing is persisted.
func (s *SettingsStore) Path() string {
	return ""
}
