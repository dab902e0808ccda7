// Package models defines the core data structures for users, sessions,
// promotions and accessibility settings.
package models

// User represents a stored admin credential.
//
// Passwords are stored and compared as plain text; hardening the
// credential store is an explicit non-goal.
type User struct {
	// Email is the login identity, compared case-sensitively.
	Email string `json:"email"`
	// Password is the plain-text credential.
	Password string `json:"password"`
}

// Session is the singleton record describing the currently authenticated
// identity. It carries no expiry; it lives until an explicit logout or
// until the storage is cleared externally.
type Session struct {
	// Email of the authenticated user.
	Email string `json:"email"`
	// IsAuthenticated is true for every session created by a login.
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Category identifies a product category of the pet-store catalog.
// Product selection in the promotion wizard is scoped to one category.
type Category string

const (
	// CategoryAlimento covers pet food products.
	CategoryAlimento Category = "alimento"
	// CategoryJuguetes covers toys.
	CategoryJuguetes Category = "juguetes"
	// CategoryCuidado covers grooming and care products.
	CategoryCuidado Category = "cuidado"
	// CategoryAccesorios covers accessories.
	CategoryAccesorios Category = "accesorios"
)

// Categories returns every valid category, in display order.
func Categories() []Category {
	return []Category{CategoryAlimento, CategoryJuguetes, CategoryCuidado, CategoryAccesorios}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAlimento, CategoryJuguetes, CategoryCuidado, CategoryAccesorios:
		return true
	}
	return false
}

// Promotion is a promotional campaign applied to a set of products of a
// single category. IsActive=false means the promotion sits in the trash;
// the record stays in the collection until it is permanently deleted.
type Promotion struct {
	// ID is the opaque unique identifier assigned at creation.
	ID string `json:"id"`
	// Name is the display title of the promotion.
	Name string `json:"name"`
	// Description is the promotional copy.
	Description string `json:"description"`
	// Category scopes the promotion and its product selection.
	Category Category `json:"category"`
	// Discount is an integer percentage in [1,100].
	Discount int `json:"discount"`
	// StartDate is an ISO calendar date (YYYY-MM-DD).
	StartDate string `json:"startDate"`
	// EndDate is an ISO calendar date (YYYY-MM-DD).
	EndDate string `json:"endDate"`
	// Image is a symbolic image reference, not a URL.
	Image string `json:"image"`
	// IsActive is false while the promotion is in the trash.
	IsActive bool `json:"isActive"`
	// SelectedProducts holds the promoted product identifiers.
	SelectedProducts []string `json:"selectedProducts"`
}

// PromotionDraft is a promotion payload before the store assigns the
// store-owned fields (ID, IsActive). The validate tags encode the wizard
// rules: step 1 covers every field except SelectedProducts, which is the
// whole of step 2.
type PromotionDraft struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Category         Category `json:"category" validate:"required,oneof=alimento juguetes cuidado accesorios"`
	Discount         int      `json:"discount" validate:"gte=1,lte=100"`
	StartDate        string   `json:"startDate" validate:"required"`
	EndDate          string   `json:"endDate" validate:"required"`
	Image            string   `json:"image"`
	SelectedProducts []string `json:"selectedProducts" validate:"min=1"`
}

// PromotionUpdate carries a partial field replacement for an existing
// promotion. Nil fields are left untouched by the merge.
type PromotionUpdate struct {
	Name             *string   `json:"name,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Category         *Category `json:"category,omitempty"`
	Discount         *int      `json:"discount,omitempty"`
	StartDate        *string   `json:"startDate,omitempty"`
	EndDate          *string   `json:"endDate,omitempty"`
	Image            *string   `json:"image,omitempty"`
	SelectedProducts *[]string `json:"selectedProducts,omitempty"`
}

// PromotionStatus classifies a promotion for list filtering.
type PromotionStatus string

const (
	// StatusAll selects every promotion that is not in the trash.
	StatusAll PromotionStatus = "all"
	// StatusActive selects promotions currently running by date.
	StatusActive PromotionStatus = "active"
	// StatusScheduled selects promotions whose start date is in the future.
	StatusScheduled PromotionStatus = "scheduled"
	// StatusExpired selects promotions whose end date has passed.
	StatusExpired PromotionStatus = "expired"
	// StatusTrash selects soft-deleted promotions.
	StatusTrash PromotionStatus = "trash"
)

// Valid reports whether s is a known filter value.
func (s PromotionStatus) Valid() bool {
	switch s {
	case StatusAll, StatusActive, StatusScheduled, StatusExpired, StatusTrash:
		return true
	}
	return false
}

// Settings is the singleton accessibility preference record.
type Settings struct {
	Contrast int `json:"contrast"`
	FontSize int `json:"fontSize"`
}

// DefaultSettings returns the settings used when none were saved yet.
func DefaultSettings() Settings {
	return Settings{Contrast: 50, FontSize: 50}
}
