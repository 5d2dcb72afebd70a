package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/creme-backend/config"
	"github.com/ikkim/creme-backend/internal/app/controller"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/db"
	"github.com/ikkim/creme-backend/internal/middleware"
	"github.com/ikkim/creme-backend/internal/router"
	"github.com/ikkim/creme-backend/internal/scheduler"
	"github.com/ikkim/creme-backend/internal/session"
	"github.com/ikkim/creme-backend/internal/storage"
	"github.com/ikkim/creme-backend/internal/viewstate"
	"github.com/ikkim/creme-backend/internal/websocket"
	"github.com/ikkim/creme-backend/pkg/logger"
	"github.com/ikkim/creme-backend/pkg/redis"
	"github.com/ikkim/creme-backend/pkg/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting CRÈME Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Menu store (optional)
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// An unreachable store must not stop the storefront; reads fall back.
	if err := db.Migrate(); err != nil {
		logger.Warn("Migrations skipped, menu store not ready", map[string]interface{}{
			"error": err.Error(),
		})
	} else if cfg.Database.SeedOnEmpty {
		if err := db.Seed(); err != nil {
			logger.Warn("Failed to seed database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Session store: Redis when configured, memory otherwise
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, keeping admin sessions in memory", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	sessions := session.NewMemoryStore()
	if client := redis.GetClient(); client != nil {
		sessions = session.NewRedisStore(client)
	}

	// Upload backends
	var stores []storage.ObjectStore
	if s3 := storage.NewS3Storage(cfg.S3); s3 != nil {
		stores = append(stores, s3)
	}
	cloudinary, err := storage.NewCloudinaryStorage(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
	if err != nil {
		logger.Warn("Cloudinary misconfigured, images backend disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else if cloudinary != nil {
		stores = append(stores, cloudinary)
	}

	// Live updates
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	// Services
	passwordHash, err := util.HashPassword(cfg.Admin.Password)
	if err != nil {
		logger.Fatal("Failed to hash admin password", err)
	}

	gateway := service.NewMenuGateway(service.NewStoreRepositories(db.GetDB()), hub)
	storefrontService := service.NewStorefrontService(gateway, cfg.Checkout.WhatsAppPhone, cfg.Checkout.Currency)
	uploadService := service.NewUploadService(cfg.Upload.DefaultBackend, stores...)
	authService := service.NewAuthService(cfg.Admin.Username, passwordHash, cfg.Admin.SessionSecret, sessions)

	logger.Info("Upload backends ready", map[string]interface{}{
		"backends": uploadService.Backends(),
		"default":  uploadService.DefaultBackend(),
	})

	// Controllers
	menuController := controller.NewMenuController(gateway, storefrontService)
	productController := controller.NewProductController(gateway)
	categoryController := controller.NewCategoryController(gateway, viewstate.NewCategoryBoard(gateway))
	configController := controller.NewConfigController(gateway)
	authController := controller.NewAuthController(authService)
	uploadController := controller.NewUploadController(uploadService, cfg.Upload.MaxFileSize)
	liveController := controller.NewLiveController(hub, gateway, cfg.CORS.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := router.NewRouter(
		menuController,
		productController,
		categoryController,
		configController,
		authController,
		uploadController,
		liveController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Store status probe
	statusScheduler := scheduler.NewStoreStatusScheduler(cfg.Scheduler.StoreProbeSpec, gateway, hub)
	if err := statusScheduler.Start(); err != nil {
		logger.Warn("Store status probe disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer statusScheduler.Stop()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}
