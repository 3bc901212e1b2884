// File: furytails/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furytails/config"
	"furytails/cron"
	"furytails/database"
	bookingRepoPkg "furytails/database/repository/booking"
	feedingRepoPkg "furytails/database/repository/feeding"
	salesRepoPkg "furytails/database/repository/sales"
	userRepoPkg "furytails/database/repository/user"
	"furytails/handlers"
	"furytails/routes"
	"furytails/services/booking"
	"furytails/services/dashboard"
	"furytails/services/dialog"
	"furytails/services/feeding"
	"furytails/services/notification"
	"furytails/services/sales"
	"furytails/services/user"
	"furytails/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	salesRepo := salesRepoPkg.NewMongoSalesRepo()
	feedingRepo := feedingRepoPkg.NewMongoFeedingRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		SalesRepo:       salesRepo,
		NotificationSvc: notificationService,
	}
	salesService := &sales.DefaultSalesService{
		Bookings: bookingRepo,
	}
	feedingService := &feeding.DefaultFeedingService{
		Repo: feedingRepo,
	}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Bookings: bookingRepo,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Bookings: bookingRepo,
		Users:    userRepo,
		Feeding:  feedingRepo,
		Sales:    salesService,
		Cache:    utils.GetCacheClient(),
		Interval: time.Duration(config.AppConfig.DashboardRefreshSeconds) * time.Second,
	}
	dialogManager := dialog.NewManager(2 * time.Minute)

	// Keep the dashboard counters fresh until shutdown.
	dashCtx, dashCancel := context.WithCancel(context.Background())
	defer dashCancel()
	dashboardService.Start(dashCtx)

	// Background worker for the daily digest and feeding reminders.
	cron.InitWorker(notificationService, bookingRepo)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
		},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserSvc:   userService,
		Booking:   &handlers.BookingHandler{Svc: bookingService},
		Sales:     &handlers.SalesHandler{Svc: salesService},
		Feeding:   &handlers.FeedingHandler{Svc: feedingService},
		User:      &handlers.UserHandler{Svc: userService},
		Dashboard: &handlers.DashboardHandler{Svc: dashboardService},
		Dialog:    &handlers.DialogHandler{Manager: dialogManager},
		Storage:   &handlers.StorageHandler{StorageSvc: cloudinaryStorageService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	dashCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
