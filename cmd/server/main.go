// Package main initializes and starts the promotion admin HTTP server,
// setting up configuration, logging, the file-backed key-value store,
// repositories, services and handlers.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/avillega/petstore-admin/internal/config"
	"github.com/avillega/petstore-admin/internal/logger"
	"github.com/avillega/petstore-admin/internal/repository"
	"github.com/avillega/petstore-admin/internal/server/handler/http"
	"github.com/avillega/petstore-admin/internal/service"
	"github.com/avillega/petstore-admin/internal/storage"
	"github.com/avillega/petstore-admin/internal/validation"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize the file-backed key-value store.
	kv, err := storage.NewFileKV(options.DataDir)
	if err != nil {
		zapLogger.Fatal("cannot init storage", zap.Error(err))
	}
	repo := repository.New(kv)

	// Initialize business-logic services and load persisted state.
	authService := service.NewAuthService(repo)
	promotionService := service.NewPromotionService(repo)
	settingsService := service.NewSettingsService(repo)
	for name, init := range map[string]func() error{
		"auth":       authService.Init,
		"promotions": promotionService.Init,
		"settings":   settingsService.Init,
	} {
		if err := init(); err != nil {
			zapLogger.Fatal("cannot init service", zap.String("service", name), zap.Error(err))
		}
	}

	// Create HTTP handlers for the API endpoints.
	v := validation.New()
	authHandler := &http.AuthHandler{AuthService: authService, Validator: v}
	promotionHandler := &http.PromotionHandler{PromotionService: promotionService, Validator: v}
	settingsHandler := &http.SettingsHandler{SettingsService: settingsService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, promotionHandler, settingsHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:         options.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
