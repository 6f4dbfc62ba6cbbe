// File: fixv/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixv/config"
	"fixv/cron"
	"fixv/database"
	bookingRepoPkg "fixv/database/repository/booking"
	catalogRepoPkg "fixv/database/repository/catalog"
	shopRepoPkg "fixv/database/repository/shop"
	userRepoPkg "fixv/database/repository/user"
	vehicleRepoPkg "fixv/database/repository/vehicle"
	"fixv/handlers"
	"fixv/middleware"
	"fixv/routes"
	"fixv/services/booking"
	"fixv/services/notification"
	"fixv/services/shop"
	"fixv/services/user"
	"fixv/services/vehicle"
	"fixv/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	handlers.UserSvc = &user.DefaultUserService{Repo: userRepo}
	handlers.VehicleSvc = &vehicle.DefaultVehicleService{Repo: vehicleRepo}
	handlers.ShopSvc = &shop.DefaultShopService{Shops: shopRepo, Catalog: catalogRepo}
	dispatcher := cron.NewDispatcher()
	defer dispatcher.Close()

	handlers.BookingSvc = &booking.DefaultBookingService{
		Bookings:        bookingRepo,
		Users:           userRepo,
		Shops:           shopRepo,
		Vehicles:        vehicleRepo,
		Catalog:         catalogRepo,
		Gateway:         booking.StripeGateway{},
		NotificationSvc: notificationService,
		Dispatcher:      dispatcher,
	}

	routes.RegisterRoutes(router)

	// Queue worker: confirmation pushes plus the sweep for transactions
	// orphaned by failed cancellations.
	cron.InitWorker(bookingRepo, notificationService)

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
