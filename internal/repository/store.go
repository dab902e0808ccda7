// Package repository provides the typed persistence adapter over the raw
// key-value storage. Each collection lives under its own namespaced key
// as a single JSON blob; every save rewrites the whole blob.
package repository

import (
	"encoding/json"
	"fmt"

	"github.com/avillega/petstore-admin/internal/models"
	"github.com/avillega/petstore-admin/internal/storage"
)

// Storage keys. The "petstore:" prefix namespaces the application's data
// inside whatever KV it is handed.
const (
	keyUsers      = "petstore:users"
	keySession    = "petstore:session"
	keyPromotions = "petstore:promotions"
	keySettings   = "petstore:settings"
)

// Default administrator credential seeded on first run.
const (
	defaultAdminEmail    = "admin@petstore.com"
	defaultAdminPassword = "admin123"
)

// Store is the typed adapter over a KV. Absent keys decode to the
// type-appropriate empty default; present-but-corrupt values fail loud
// with the decode error.
type Store struct {
	kv storage.KV
}

// New constructs a Store over the given KV.
func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// GetUsers returns the stored user list, or an empty list when none was
// saved yet.
func (s *Store) GetUsers() ([]models.User, error) {
	raw, err := s.kv.Get(keyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// SaveUsers overwrites the stored user list.
func (s *Store) SaveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	return s.kv.Set(keyUsers, raw)
}

// GetSession returns the persisted session, or nil when nobody is logged
// in.
func (s *Store) GetSession() (*models.Session, error) {
	raw, err := s.kv.Get(keySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// SaveSession persists the given session as the singleton session record.
func (s *Store) SaveSession(session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.kv.Set(keySession, raw)
}

// ClearSession removes the persisted session, if any.
func (s *Store) ClearSession() error {
	return s.kv.Delete(keySession)
}

// GetPromotions returns the stored promotion collection, or an empty list
// when none was saved yet.
func (s *Store) GetPromotions() ([]models.Promotion, error) {
	raw, err := s.kv.Get(keyPromotions)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Promotion{}, nil
	}
	var promotions []models.Promotion
	if err := json.Unmarshal(raw, &promotions); err != nil {
		return nil, fmt.Errorf("decode promotions: %w", err)
	}
	return promotions, nil
}

// SavePromotions overwrites the stored promotion collection.
func (s *Store) SavePromotions(promotions []models.Promotion) error {
	raw, err := json.Marshal(promotions)
	if err != nil {
		return fmt.Errorf("encode promotions: %w", err)
	}
	return s.kv.Set(keyPromotions, raw)
}

// GetSettings returns the stored accessibility settings, or the defaults
// when none were saved yet.
func (s *Store) GetSettings() (models.Settings, error) {
	raw, err := s.kv.Get(keySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if raw == nil {
		return models.DefaultSettings(), nil
	}
	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// SaveSettings overwrites the stored accessibility settings.
func (s *Store) SaveSettings(settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.kv.Set(keySettings, raw)
}

// InitializeDefaults seeds the administrator credential and the sample
// promotions on first run. It never overwrites a non-empty collection, so
// calling it on every startup is safe.
func (s *Store) InitializeDefaults() error {
	users, err := s.GetUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		admin := models.User{Email: defaultAdminEmail, Password: defaultAdminPassword}
		if err := s.SaveUsers([]models.User{admin}); err != nil {
			return err
		}
	}

	promotions, err := s.GetPromotions()
	if err != nil {
		return err
	}
	if len(promotions) == 0 {
		if err := s.SavePromotions(samplePromotions()); err != nil {
			return err
		}
	}
	return nil
}

// samplePromotions is the fixed sample set seeded into an empty store.
// Illustrative data, not a contract beyond being non-empty and
// well-formed.
func samplePromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID:               "promo-1",
			Name:             "Descuento en Alimento Premium",
			Description:      "20% de descuento en alimento premium para perros",
			Category:         models.CategoryAlimento,
			Discount:         20,
			StartDate:        "2025-01-01",
			EndDate:          "2025-12-31",
			Image:            "dog-products",
			IsActive:         true,
			SelectedProducts: []string{"1", "2"},
		},
		{
			ID:               "promo-2",
			Name:             "Semana del Juguete",
			Description:      "Los mejores juguetes para tu gato con 15% de descuento",
			Category:         models.CategoryJuguetes,
			Discount:         15,
			StartDate:        "2025-03-01",
			EndDate:          "2025-03-31",
			Image:            "cat-products",
			IsActive:         true,
			SelectedProducts: []string{"4", "5"},
		},
		{
			ID:               "promo-3",
			Name:             "Cuidado e Higiene",
			Description:      "10% de descuento en productos de cuidado",
			Category:         models.CategoryCuidado,
			Discount:         10,
			StartDate:        "2025-06-01",
			EndDate:          "2025-06-30",
			Image:            "dog-products",
			IsActive:         true,
			SelectedProducts: []string{"7"},
		},
	}
}
