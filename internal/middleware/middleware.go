// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avillega/petstore-admin/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionSource exposes the current session to the auth middleware.
type SessionSource interface {
	// Session returns the active session, nil when nobody is logged in.
	Session() *models.Session
}

// SessionAuth is a middleware that guards the admin endpoints.
//
// It checks whether an authenticated session exists. Requests without one
// are rejected with 401 before reaching the handler. On success the
// session's email is stored in the request context, so it can be used
// downstream as the acting user.
func SessionAuth(src SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := src.Session()
			if session == nil || !session.IsAuthenticated {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status":"Error","error":"no autenticado"}`))
				return
			}
			ctx := context.WithValue(r.Context(), userKey, session.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the acting user's email from the request
// context. Returns an empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithRequestLogging logs each request's method, path, status and
// duration through the given structured logger.
func WithRequestLogging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
