package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/avillega/petstore-admin/internal/models"
)

// mockPromotionStore records every persisted collection.
type mockPromotionStore struct {
	promotions []models.Promotion
	saves      [][]models.Promotion
}

func (m *mockPromotionStore) InitializeDefaults() error { return nil }
func (m *mockPromotionStore) GetPromotions() ([]models.Promotion, error) {
	return m.promotions, nil
}
func (m *mockPromotionStore) SavePromotions(ps []models.Promotion) error {
	m.saves = append(m.saves, ps)
	m.promotions = ps
	return nil
}

func testPromotions() []models.Promotion {
	return []models.Promotion{
		{
			ID: "1", Name: "Promoción Test 1", Description: "Descripción test",
			Category: models.CategoryAlimento, Discount: 20,
			StartDate: "2025-01-01", EndDate: "2025-12-31",
			Image: "dog-products", IsActive: true, SelectedProducts: []string{"1", "2"},
		},
		{
			ID: "2", Name: "Promoción Test 2", Description: "Otra descripción",
			Category: models.CategoryJuguetes, Discount: 15,
			StartDate: "2025-01-01", EndDate: "2025-06-30",
			Image: "cat-products", IsActive: true, SelectedProducts: []string{"3"},
		},
		{
			ID: "3", Name: "Promoción Eliminada", Description: "Esta está inactiva",
			Category: models.CategoryCuidado, Discount: 10,
			StartDate: "2025-01-01", EndDate: "2025-12-31",
			Image: "dog-products", IsActive: false, SelectedProducts: []string{"4"},
		},
	}
}

func newPromotionService(t *testing.T) (*PromotionService, *mockPromotionStore) {
	t.Helper()
	store := &mockPromotionStore{promotions: testPromotions()}
	svc := NewPromotionService(store)
	if err := svc.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return svc, store
}

func find(ps []models.Promotion, id string) *models.Promotion {
	for i := range ps {
		if ps[i].ID == id {
			return &ps[i]
		}
	}
	return nil
}

func TestAdd_AssignsIDAndActivates(t *testing.T) {
	svc, store := newPromotionService(t)

	draft := models.PromotionDraft{
		Name: "Nueva Promoción", Description: "Nueva descripción",
		Category: models.CategoryAlimento, Discount: 25,
		StartDate: "2025-02-01", EndDate: "2025-12-31",
		Image: "dog-products", SelectedProducts: []string{"5", "6"},
	}
	p, err := svc.Add(draft)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if p.ID == "" {
		t.Error("Add must assign a non-empty id")
	}
	if !p.IsActive {
		t.Error("Add must set IsActive=true")
	}
	if len(svc.List()) != 4 {
		t.Errorf("collection length = %d; want 4", len(svc.List()))
	}
	if len(store.saves) != 1 || len(store.saves[0]) != 4 {
		t.Errorf("expected one persisted collection of 4 records, got %+v saves", len(store.saves))
	}
}

func TestAdd_GeneratesUniqueIDs(t *testing.T) {
	svc, _ := newPromotionService(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := svc.Add(models.PromotionDraft{Name: "x"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id generated: %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAdd_NormalizesNilProducts(t *testing.T) {
	svc, _ := newPromotionService(t)

	p, err := svc.Add(models.PromotionDraft{Name: "Test", SelectedProducts: nil})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if p.SelectedProducts == nil || len(p.SelectedProducts) != 0 {
		t.Errorf("SelectedProducts = %#v; want empty non-nil slice", p.SelectedProducts)
	}
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	svc, _ := newPromotionService(t)

	discount := 40
	if err := svc.Update("1", models.PromotionUpdate{Discount: &discount}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got := find(svc.List(), "1")
	if got.Discount != 40 {
		t.Errorf("Discount = %d; want 40", got.Discount)
	}
	if got.Name != "Promoción Test 1" || got.Description != "Descripción test" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdate_FieldLevelIsolation(t *testing.T) {
	svc, _ := newPromotionService(t)

	discount := 50
	if err := svc.Update("1", models.PromotionUpdate{Discount: &discount}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	other := find(svc.List(), "2")
	if other.Discount != 15 {
		t.Errorf("other record changed: discount = %d; want 15", other.Discount)
	}
}

func TestUpdate_UnknownIDIsSilentNoOpButPersists(t *testing.T) {
	svc, store := newPromotionService(t)
	before := svc.List()

	name := "No Existe"
	if err := svc.Update("999", models.PromotionUpdate{Name: &name}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !reflect.DeepEqual(before, svc.List()) {
		t.Error("collection changed on unknown id")
	}
	// The lenient contract still writes the (unchanged) collection through.
	if len(store.saves) != 1 {
		t.Errorf("SavePromotions called %d times; want 1", len(store.saves))
	}
}

func TestDelete_SoftDeleteKeepsRecord(t *testing.T) {
	svc, _ := newPromotionService(t)

	if err := svc.Delete("1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list := svc.List()
	if len(list) != 3 {
		t.Errorf("collection length = %d; want 3", len(list))
	}
	if got := find(list, "1"); got.IsActive {
		t.Error("deleted promotion should have IsActive=false")
	}
	if other := find(list, "2"); !other.IsActive {
		t.Error("other promotions must stay active")
	}
	// Position is preserved.
	if list[0].ID != "1" {
		t.Errorf("record moved: first id = %s; want 1", list[0].ID)
	}
}

func TestDeleteRestore_RoundTrip(t *testing.T) {
	svc, _ := newPromotionService(t)
	before := *find(svc.List(), "1")

	if err := svc.Delete("1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Restore("1"); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	after := *find(svc.List(), "1")
	if !reflect.DeepEqual(before, after) {
		t.Errorf("delete+restore is not identity:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRestore_AlreadyActiveStaysActive(t *testing.T) {
	svc, _ := newPromotionService(t)

	if err := svc.Restore("1"); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if got := find(svc.List(), "1"); !got.IsActive {
		t.Error("restoring an active promotion must keep it active")
	}
}

func TestPermanentlyDelete(t *testing.T) {
	svc, _ := newPromotionService(t)

	if err := svc.PermanentlyDelete("1"); err != nil {
		t.Fatalf("PermanentlyDelete failed: %v", err)
	}
	list := svc.List()
	if len(list) != 2 {
		t.Errorf("collection length = %d; want 2", len(list))
	}
	if find(list, "1") != nil {
		t.Error("record must be gone after permanent delete")
	}

	// Repeating on the same id is a no-op.
	if err := svc.PermanentlyDelete("1"); err != nil {
		t.Fatalf("second PermanentlyDelete failed: %v", err)
	}
	if len(svc.List()) != 2 {
		t.Errorf("collection length changed on repeated delete")
	}
}

func TestStatusOf(t *testing.T) {
	svc, _ := newPromotionService(t)
	svc.now = func() time.Time {
		return time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		p    models.Promotion
		want models.PromotionStatus
	}{
		{
			name: "trash wins over dates",
			p:    models.Promotion{IsActive: false, StartDate: "2025-01-01", EndDate: "2025-12-31"},
			want: models.StatusTrash,
		},
		{
			name: "scheduled when start is in the future",
			p:    models.Promotion{IsActive: true, StartDate: "2025-09-01", EndDate: "2025-12-31"},
			want: models.StatusScheduled,
		},
		{
			name: "expired when end has passed",
			p:    models.Promotion{IsActive: true, StartDate: "2025-01-01", EndDate: "2025-06-30"},
			want: models.StatusExpired,
		},
		{
			name: "active inside the window",
			p:    models.Promotion{IsActive: true, StartDate: "2025-01-01", EndDate: "2025-12-31"},
			want: models.StatusActive,
		},
		{
			name: "active on the boundary days",
			p:    models.Promotion{IsActive: true, StartDate: "2025-08-15", EndDate: "2025-08-15"},
			want: models.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.StatusOf(tt.p); got != tt.want {
				t.Errorf("StatusOf = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestListByStatus(t *testing.T) {
	svc, _ := newPromotionService(t)
	svc.now = func() time.Time {
		return time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)
	}

	// Fixture: "1" runs all year (active), "2" ended in June (expired),
	// "3" is in the trash.
	tests := []struct {
		status  models.PromotionStatus
		wantIDs []string
	}{
		{models.StatusAll, []string{"1", "2"}},
		{models.StatusActive, []string{"1"}},
		{models.StatusExpired, []string{"2"}},
		{models.StatusScheduled, []string{}},
		{models.StatusTrash, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := svc.ListByStatus(tt.status)
			ids := []string{}
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ListByStatus(%s) = %v; want %v", tt.status, ids, tt.wantIDs)
			}
		})
	}
}
