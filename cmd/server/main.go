package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/hairshop/admin/docs"
	"github.com/hairshop/admin/internal/config"
	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/handlers"
	custommw "github.com/hairshop/admin/internal/middleware"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/repository"
	"github.com/hairshop/admin/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Hair Shop Admin Console API
// @version 1.0
// @description Staff console for the hair-shop catalog: products, variants, colors and variant image galleries.
// @BasePath /
// @securityDefinitions.apikey SessionAuth
// @in cookie
// @name session_token
func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.GetLogger().Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger := observability.GetLogger()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	telemetry, err := observability.Initialize(ctx, observability.NewConfig("hairshop-admin", handlers.Version))
	if err != nil {
		logger.Warnf("Telemetry disabled: %v", err)
	}

	// Database
	var db *sql.DB
	dbSystem := "sqlite"
	if cfg.UsePostgres() {
		logger.Info("Using PostgreSQL database")
		db, err = repository.NewPostgresDB(cfg.DatabaseURL)
		dbSystem = "postgresql"
	} else {
		logger.Infof("Using SQLite database at %s", cfg.DatabasePath)
		db, err = repository.NewSQLiteDB(cfg.DatabasePath)
	}
	if err != nil {
		logger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	var dbtx repository.DBTX = db
	if traced, err := observability.NewTraceDB(db, dbSystem); err == nil {
		dbtx = traced
	} else {
		logger.Warnf("Database tracing disabled: %v", err)
	}

	userRepo := repository.NewUserRepository(dbtx)
	sessionRepo := repository.NewWebSessionRepository(dbtx)
	activityRepo := repository.NewActivityRepository(dbtx)

	metrics, err := observability.NewConsoleMetrics()
	if err != nil {
		logger.Warnf("Business metrics disabled: %v", err)
	}
	httpMetrics, err := observability.NewHTTPMetrics()
	if err != nil {
		logger.Warnf("HTTP metrics disabled: %v", err)
	}

	// Services
	hub := services.NewWebSocketHub()
	go hub.Run(ctx)

	activityService := services.NewActivityService(activityRepo)
	activityService.SetWebSocketHub(hub)

	authService := services.NewAuthService(userRepo, sessionRepo, activityService, metrics, cfg.Security.SessionDurationHours)
	if created, err := authService.BootstrapAdmin(ctx, cfg.Security.AdminUsername, cfg.Security.AdminPassword); err != nil {
		logger.Errorf("Failed to bootstrap staff account: %v", err)
	} else if !created {
		if count, err := userRepo.GetCount(ctx); err == nil && count == 0 {
			logger.Warn("No staff account exists; set ADMIN_USERNAME and ADMIN_PASSWORD")
		}
	}

	catalog := services.NewCatalogClient(cfg.CatalogAPI, metrics)
	uploads := services.NewUploadService(cfg.Uploads)
	notifications := services.NewNotificationService(hub, activityService, cfg.CatalogAPI.ImageCDNURL)

	galleries := gallery.NewRegistry(catalog, notifications, metrics)
	galleries.OnChange(notifications.GalleryUpdated)

	maintenance := services.NewMaintenanceService(authService, activityService, cfg.Security.ActivityRetentionDays)
	maintenance.Start(ctx)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, galleries)
	productHandler := handlers.NewProductHandler(catalog, activityService)
	variantHandler := handlers.NewVariantHandler(catalog, uploads, galleries, activityService, metrics)
	colorHandler := handlers.NewColorHandler(catalog, activityService)
	galleryHandler := handlers.NewGalleryHandler(galleries, cfg.CatalogAPI.ImageCDNURL)
	activityHandler := handlers.NewActivityHandler(activityService)
	metaHandler := handlers.NewMetaHandler(uploads.MaxBytes())
	wsHandler := handlers.NewWebSocketHandler(hub)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenance)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.TracingMiddleware())
	if httpMetrics != nil {
		r.Use(observability.MetricsMiddleware(httpMetrics))
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(custommw.SetupRequired(userRepo))

	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/api/health", healthHandler.HealthCheck)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/api/auth/login", authHandler.Login)

	sessionAuth := custommw.SessionAuth(sessionRepo, userRepo)

	r.With(sessionAuth).Get("/ws", wsHandler.HandleConnection)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionAuth)

		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/session", authHandler.GetSession)
		r.Get("/meta", metaHandler.Get)
		r.Get("/activity", activityHandler.List)
		r.Get("/maintenance", maintenanceHandler.GetStatus)
		r.Post("/maintenance/run", maintenanceHandler.Run)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/variants", func(r chi.Router) {
			r.Post("/", variantHandler.Create)
			r.Get("/{id}", variantHandler.Get)
			r.Put("/{id}", variantHandler.Update)
			r.Put("/{id}/sku", variantHandler.UpdateSKU)
			r.Delete("/{id}", variantHandler.Delete)
			r.Post("/{id}/images", variantHandler.UploadImages)
		})

		r.Route("/colors", func(r chi.Router) {
			r.Get("/", colorHandler.List)
			r.Post("/", colorHandler.Create)
			r.Delete("/{id}", colorHandler.Delete)
		})

		r.Route("/gallery/{variantID}", func(r chi.Router) {
			r.Post("/", galleryHandler.Open)
			r.Get("/", galleryHandler.Get)
			r.Delete("/", galleryHandler.Close)
			r.Post("/move", galleryHandler.Move)
			r.Post("/save", galleryHandler.Save)
			r.Post("/discard", galleryHandler.Discard)
			r.Delete("/images/{imageID}", galleryHandler.DeleteImage)
		})
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Longer for uploads
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Hair shop admin console starting on %s", cfg.ServerAddress)
		logger.Infof("Catalog API: %s", cfg.CatalogAPI.BaseURL)
		logger.Infof("Max upload size: %dMB", cfg.Uploads.MaxFileSizeMB)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Server error: %v", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	stop()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("Telemetry shutdown: %v", err)
		}
	}

	logger.Info("Server stopped")
}
