package http

import (
	"encoding/json"
	"net/http"

	"github.com/avillega/petstore-admin/internal/models"
)

// SettingsService defines the interface for the settings operations
// required by the HTTP handlers.
type SettingsService interface {
	// Get returns the current settings.
	Get() models.Settings
	// Update replaces the settings record whole.
	Update(models.Settings) error
}

// SettingsHandler handles HTTP requests for the accessibility settings.
type SettingsHandler struct {
	// SettingsService performs the underlying settings operations.
	SettingsService SettingsService
}

// Get returns the current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, http.StatusOK, h.SettingsService.Get())
}

// Update replaces the settings with the request body. The record is
// written whole; there is no partial merge.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, r, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if err := h.SettingsService.Update(settings); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, h.SettingsService.Get())
}
