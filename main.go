package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driveline/backend"
	"driveline/config"
	"driveline/cron"
	"driveline/handlers"
	"driveline/middleware"
	"driveline/routes"
	"driveline/services/auth"
	"driveline/services/booking"
	"driveline/services/notification"
	"driveline/services/storage"
	"driveline/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	config.FirebaseInit()

	// Typed client for the external booking API; the backend owns all
	// persistence and conflict arbitration.
	apiClient := backend.NewClient(config.AppConfig.BackendAPIURL, nil)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	authService := auth.NewService(apiClient, utils.GetAuthCacheClient())

	pushService := notification.NewFCMPushService(utils.GetDeviceCacheClient(), config.FCMClient, logger)
	reminderScheduler := cron.NewReminderScheduler()

	catalogService := &booking.CatalogService{
		Sessions: apiClient,
		Limit:    config.AppConfig.SessionFetchLimit,
		Logger:   logger,
	}
	wizardService := booking.NewWizardService(booking.NewRedisDraftStore(utils.GetDraftCacheClient()))
	orchestrator := &booking.Orchestrator{
		Sessions:  apiClient,
		Bookings:  apiClient,
		Auth:      authService,
		Drafts:    wizardService.Drafts,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	storageService, err := storage.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
	var storageSvc storage.StorageService = storageService
	if err != nil {
		logger.Sugar().Warnf("main: content image uploads disabled: %v", err)
		storageSvc = storage.Disabled()
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,
		Auth:        handlers.NewAuthHandler(authService, logger),
		Booking:     handlers.NewBookingHandler(wizardService, catalogService, orchestrator, logger),
		Dashboard:   handlers.NewDashboardHandler(apiClient, logger),
		Content:     handlers.NewContentHandler(apiClient, apiClient, apiClient, logger),
		Device:      handlers.NewDeviceHandler(pushService, logger),
		Storage:     handlers.NewStorageHandler(storageSvc, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Lesson reminder worker (best-effort pushes, never blocks bookings).
	cron.StartReminderWorker(pushService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
