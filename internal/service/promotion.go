package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avillega/petstore-admin/internal/models"
)

// dateLayout is the ISO calendar date format used by promotion dates.
// Dates in this format compare chronologically as plain strings.
const dateLayout = "2006-01-02"

// PromotionStore defines the persistence operations required by
// PromotionService.
type PromotionStore interface {
	// InitializeDefaults seeds the default data on first run.
	InitializeDefaults() error
	// GetPromotions returns the stored promotion collection.
	GetPromotions() ([]models.Promotion, error)
	// SavePromotions overwrites the stored promotion collection.
	SavePromotions([]models.Promotion) error
}

// PromotionService manages the promotion collection. Every mutation
// computes a new full collection, persists it whole, then replaces the
// in-memory copy; there is no per-record write path.
type PromotionService struct {
	store PromotionStore
	now   func() time.Time

	mu         sync.Mutex
	promotions []models.Promotion
}

// NewPromotionService constructs a PromotionService over the given store.
// Init must run before the service handles operations.
func NewPromotionService(store PromotionStore) *PromotionService {
	return &PromotionService{store: store, now: time.Now}
}

// Init seeds the default data and loads the promotion collection.
func (s *PromotionService) Init() error {
	if err := s.store.InitializeDefaults(); err != nil {
		return err
	}
	promotions, err := s.store.GetPromotions()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.promotions = promotions
	s.mu.Unlock()
	return nil
}

// List returns a copy of the full promotion collection, trash included.
func (s *PromotionService) List() []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Promotion, len(s.promotions))
	copy(out, s.promotions)
	return out
}

// ListByStatus returns the promotions matching the given filter, in
// collection order. StatusAll selects everything except the trash.
func (s *PromotionService) ListByStatus(status models.PromotionStatus) []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Promotion{}
	for _, p := range s.promotions {
		st := s.statusOf(p)
		switch status {
		case models.StatusAll:
			if st != models.StatusTrash {
				out = append(out, p)
			}
		case st:
			out = append(out, p)
		}
	}
	return out
}

// StatusOf classifies a single promotion against today's date.
func (s *PromotionService) StatusOf(p models.Promotion) models.PromotionStatus {
	return s.statusOf(p)
}

// statusOf implements the trash/scheduled/expired/active classification.
// Unparseable dates never match the date comparisons, leaving the
// promotion classified as active.
func (s *PromotionService) statusOf(p models.Promotion) models.PromotionStatus {
	if !p.IsActive {
		return models.StatusTrash
	}
	today := s.now().Format(dateLayout)
	if p.StartDate > today {
		return models.StatusScheduled
	}
	if p.EndDate < today {
		return models.StatusExpired
	}
	return models.StatusActive
}

// Add creates a promotion from the draft: it assigns a fresh unique id,
// marks it active and appends it to the collection. A nil product
// selection is normalized to an empty list; the non-empty rule is the
// form layer's job, not the collection's.
func (s *PromotionService) Add(draft models.PromotionDraft) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Promotion{
		ID:               uuid.NewString(),
		Name:             draft.Name,
		Description:      draft.Description,
		Category:         draft.Category,
		Discount:         draft.Discount,
		StartDate:        draft.StartDate,
		EndDate:          draft.EndDate,
		Image:            draft.Image,
		IsActive:         true,
		SelectedProducts: draft.SelectedProducts,
	}
	if p.SelectedProducts == nil {
		p.SelectedProducts = []string{}
	}

	next := make([]models.Promotion, len(s.promotions), len(s.promotions)+1)
	copy(next, s.promotions)
	next = append(next, p)
	if err := s.store.SavePromotions(next); err != nil {
		return models.Promotion{}, err
	}
	s.promotions = next
	return p, nil
}

// Update merges the non-nil fields of u onto the promotion matching id.
// An unknown id is a silent no-op, but the (unchanged) collection is
// still persisted.
func (s *PromotionService) Update(id string, u models.PromotionUpdate) error {
	return s.mutate(func(p *models.Promotion) {
		if p.ID != id {
			return
		}
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Category != nil {
			p.Category = *u.Category
		}
		if u.Discount != nil {
			p.Discount = *u.Discount
		}
		if u.StartDate != nil {
			p.StartDate = *u.StartDate
		}
		if u.EndDate != nil {
			p.EndDate = *u.EndDate
		}
		if u.Image != nil {
			p.Image = *u.Image
		}
		if u.SelectedProducts != nil {
			p.SelectedProducts = *u.SelectedProducts
		}
	})
}

// Delete moves the promotion matching id to the trash. The record keeps
// its position in the collection. Unknown ids are silent no-ops.
func (s *PromotionService) Delete(id string) error {
	return s.mutate(func(p *models.Promotion) {
		if p.ID == id {
			p.IsActive = false
		}
	})
}

// Restore takes the promotion matching id out of the trash. Unknown ids
// are silent no-ops.
func (s *PromotionService) Restore(id string) error {
	return s.mutate(func(p *models.Promotion) {
		if p.ID == id {
			p.IsActive = true
		}
	})
}

// PermanentlyDelete removes the promotion matching id from the collection
// entirely. Unknown ids are silent no-ops.
func (s *PromotionService) PermanentlyDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Promotion, 0, len(s.promotions))
	for _, p := range s.promotions {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if err := s.store.SavePromotions(next); err != nil {
		return err
	}
	s.promotions = next
	return nil
}

// mutate rebuilds the collection by applying fn to a copy of every record
// and persists the result. There is no per-record write path; every
// mutation goes through a whole-collection save.
func (s *PromotionService) mutate(fn func(*models.Promotion)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Promotion, len(s.promotions))
	copy(next, s.promotions)
	for i := range next {
		fn(&next[i])
	}
	if err := s.store.SavePromotions(next); err != nil {
		return err
	}
	s.promotions = next
	return nil
}
