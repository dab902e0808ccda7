package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avillega/petstore-admin/internal/catalog"
	"github.com/avillega/petstore-admin/internal/models"
	"github.com/avillega/petstore-admin/internal/validation"
)

// PromotionService defines the interface for promotion collection
// operations required by the HTTP handlers.
type PromotionService interface {
	// ListByStatus returns the promotions matching the status filter.
	ListByStatus(models.PromotionStatus) []models.Promotion
	// Add creates a promotion from a validated draft.
	Add(models.PromotionDraft) (models.Promotion, error)
	// Update merges the provided fields onto the matching promotion.
	Update(id string, u models.PromotionUpdate) error
	// Delete moves the matching promotion to the trash.
	Delete(id string) error
	// Restore takes the matching promotion out of the trash.
	Restore(id string) error
	// PermanentlyDelete removes the matching promotion entirely.
	PermanentlyDelete(id string) error
}

// PromotionHandler handles HTTP requests for the promotion collection
// and the product catalog behind it.
type PromotionHandler struct {
	// PromotionService performs the underlying collection operations.
	PromotionService PromotionService
	// Validator checks the promotion form fields.
	Validator *validation.Validator
}

// List returns the promotions matching the ?status= filter. Without the
// parameter it returns everything except the trash.
func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.StatusAll
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = models.PromotionStatus(raw)
		if !status.Valid() {
			writeError(w, r, http.StatusBadRequest, "filtro de estado inválido")
			return
		}
	}
	writeOK(w, r, http.StatusOK, h.PromotionService.ListByStatus(status))
}

// Create validates the full draft and appends a new promotion.
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.PromotionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, r, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if errs := h.Validator.Draft(draft); len(errs) > 0 {
		writeFieldErrors(w, r, errs)
		return
	}

	p, err := h.PromotionService.Add(draft)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusCreated, p)
}

// Update merges a partial edit onto the promotion in the path. Provided
// fields are validated; absent fields keep their stored value. The id is
// not looked up first, matching the collection's lenient contract.
func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var u models.PromotionUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeError(w, r, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if errs := h.Validator.Update(u); len(errs) > 0 {
		writeFieldErrors(w, r, errs)
		return
	}

	if err := h.PromotionService.Update(chi.URLParam(r, "id"), u); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, nil)
}

// Delete moves the promotion in the path to the trash.
func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.PromotionService.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, nil)
}

// Restore takes the promotion in the path out of the trash.
func (h *PromotionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.PromotionService.Restore(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, nil)
}

// PermanentlyDelete removes the promotion in the path from the
// collection entirely.
func (h *PromotionHandler) PermanentlyDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PromotionService.PermanentlyDelete(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, nil)
}

// Catalog returns the products of the category in the path, for the
// wizard's product-selection step.
func (h *PromotionHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	category := models.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		writeError(w, r, http.StatusNotFound, "categoría desconocida")
		return
	}
	writeOK(w, r, http.StatusOK, catalog.ByCategory(category))
}
