package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/avillega/petstore-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// promotion admin API. It applies JSON content-type enforcement and
// request logging, and mounts the endpoints under /api. The promotion,
// catalog and settings routes sit behind session authentication; the
// auth endpoints stay public so the admin can log in.
//
// Routes:
//
//	POST   /api/register                      → authHandler.Register
//	POST   /api/login                         → authHandler.Login
//	POST   /api/logout                        → authHandler.Logout
//	GET    /api/session                       → authHandler.CurrentSession
//	GET    /api/promotions?status=            → promotionHandler.List
//	POST   /api/promotions                    → promotionHandler.Create
//	PATCH  /api/promotions/{id}               → promotionHandler.Update
//	DELETE /api/promotions/{id}               → promotionHandler.Delete
//	POST   /api/promotions/{id}/restore       → promotionHandler.Restore
//	DELETE /api/promotions/{id}/permanent     → promotionHandler.PermanentlyDelete
//	GET    /api/catalog/{category}            → promotionHandler.Catalog
//	GET    /api/settings                      → settingsHandler.Get
//	PUT    /api/settings                      → settingsHandler.Update
func NewRouter(
	authHandler *AuthHandler,
	promotionHandler *PromotionHandler,
	settingsHandler *SettingsHandler,
	sessions middleware.SessionSource,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.CurrentSession)

		// Protected group: requires an authenticated session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(sessions))

			r.Route("/promotions", func(r chi.Router) {
				r.Get("/", promotionHandler.List)
				r.Post("/", promotionHandler.Create)
				r.Patch("/{id}", promotionHandler.Update)
				r.Delete("/{id}", promotionHandler.Delete)
				r.Post("/{id}/restore", promotionHandler.Restore)
				r.Delete("/{id}/permanent", promotionHandler.PermanentlyDelete)
			})

			r.Get("/catalog/{category}", promotionHandler.Catalog)

			r.Get("/settings", settingsHandler.Get)
			r.Put("/settings", settingsHandler.Update)
		})
	})

	return r
}
