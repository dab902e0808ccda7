package service

import (
	"sync"

	"github.com/avillega/petstore-admin/internal/models"
)

// SettingsStore defines the persistence operations required by
// SettingsService.
type SettingsStore interface {
	// GetSettings returns the stored settings, defaults when absent.
	GetSettings() (models.Settings, error)
	// SaveSettings overwrites the stored settings.
	SaveSettings(models.Settings) error
}

// SettingsService manages the singleton accessibility settings record.
type SettingsService struct {
	store SettingsStore

	mu       sync.Mutex
	settings models.Settings
}

// NewSettingsService constructs a SettingsService over the given store.
// Init must run before the service handles operations.
func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Init loads the persisted settings, falling back to the defaults.
func (s *SettingsService) Init() error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// Get returns the current settings.
func (s *SettingsService) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update replaces the settings record whole and persists it.
func (s *SettingsService) Update(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.SaveSettings(settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}
