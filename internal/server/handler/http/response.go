// Package http provides the HTTP handlers for the promotion admin API:
// authentication, the promotion collection, the product catalog and the
// accessibility settings.
package http

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	// StatusOK is the envelope status of a successful response.
	StatusOK = "OK"
	// StatusError is the envelope status of a failed response.
	StatusError = "Error"
)

// Response is the uniform JSON envelope every endpoint answers with.
// Error carries a single request-level message; Errors carries
// field-level validation messages keyed by field name.
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
	Data   any               `json:"data,omitempty"`
}

func writeOK(w http.ResponseWriter, r *http.Request, code int, data any) {
	render.Status(r, code)
	render.JSON(w, r, Response{Status: StatusOK, Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, Response{Status: StatusError, Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, Response{Status: StatusError, Errors: errs})
}
