package http

import (
	"encoding/json"
	"net/http"

	"github.com/avillega/petstore-admin/internal/models"
	"github.com/avillega/petstore-admin/internal/validation"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login matches the credentials and opens a session on success.
	Login(email, password string) (bool, error)
	// Logout closes the current session.
	Logout() error
	// Register stores a new credential; false means the email is taken.
	Register(email, password string) (bool, error)
	// Session returns the active session, nil when nobody is logged in.
	Session() *models.Session
}

// AuthHandler handles HTTP requests for registration, login, logout and
// the current-session probe.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Validator checks the credential form fields.
	Validator *validation.Validator
}

// Register handles user registration requests.
// It expects a JSON body with email and password, validates the form and
// rejects emails that are already taken. Registration does not open a
// session; the new user logs in separately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req validation.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if errs := h.Validator.Login(req); len(errs) > 0 {
		writeFieldErrors(w, r, errs)
		return
	}

	ok, err := h.AuthService.Register(req.Email, req.Password)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	if !ok {
		writeError(w, r, http.StatusConflict, "El email ya está registrado")
		return
	}
	writeOK(w, r, http.StatusCreated, map[string]string{"email": req.Email})
}

// Login handles login requests. Credentials compare exactly against the
// stored users; a mismatch of either field yields the same 401 message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req validation.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if errs := h.Validator.Login(req); len(errs) > 0 {
		writeFieldErrors(w, r, errs)
		return
	}

	ok, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "Email o contraseña incorrectos")
		return
	}
	writeOK(w, r, http.StatusOK, h.AuthService.Session())
}

// Logout closes the session. Logging out while already logged out still
// answers 200.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error interno")
		return
	}
	writeOK(w, r, http.StatusOK, nil)
}

// CurrentSession reports who is logged in, or 401 when nobody is.
func (h *AuthHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	session := h.AuthService.Session()
	if session == nil || !session.IsAuthenticated {
		writeError(w, r, http.StatusUnauthorized, "no autenticado")
		return
	}
	writeOK(w, r, http.StatusOK, session)
}
