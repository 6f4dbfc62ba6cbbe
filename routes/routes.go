package routes

import (
	"net/http"
	"time"

	"fixv/handlers"
	"fixv/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterHandler)
		api.POST("/login", handlers.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", handlers.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", handlers.GetProfileHandler)
		api.PUT("/me", handlers.UpdateProfileHandler)
		api.DELETE("/me", handlers.DeleteAccountHandler)
		api.POST("/me/device-tokens", handlers.RegisterDeviceTokenHandler)
	}
}

// RegisterVehicleRoutes registers garage endpoints.
func RegisterVehicleRoutes(r *gin.Engine) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", handlers.AddVehicleHandler)
		api.GET("", handlers.ListVehiclesHandler)
		api.GET("/:id", handlers.GetVehicleHandler)
		api.PUT("/:id", handlers.UpdateVehicleHandler)
		api.DELETE("/:id", handlers.DeleteVehicleHandler)
	}
}

// RegisterShopRoutes registers the shop directory and catalogue endpoints.
// Browsing shops requires no account.
func RegisterShopRoutes(r *gin.Engine) {
	api := r.Group("/api/shops")
	{
		api.GET("", handlers.ListShopsHandler)
		api.GET("/:id", handlers.GetShopHandler)
		api.GET("/:id/catalogue", handlers.GetShopCatalogueHandler)
	}
	r.GET("/api/services", handlers.ListServicesHandler)
}

// RegisterBookingRoutes registers appointment and invoice endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/appointments", handlers.BookAppointmentHandler)
		api.GET("/appointments", handlers.ListAppointmentsHandler)
		api.GET("/appointments/:id", handlers.GetAppointmentHandler)
		api.PUT("/appointments/:id/schedule", handlers.RescheduleAppointmentHandler)
		api.DELETE("/appointments/:id", handlers.CancelAppointmentHandler)

		api.GET("/invoices/:id", handlers.GetInvoiceHandler)
		api.GET("/invoices/:id/pdf", handlers.GetInvoicePDFHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FIXV"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterUserRoutes(r)
	RegisterVehicleRoutes(r)
	RegisterShopRoutes(r)
	RegisterBookingRoutes(r)
	RegisterHealthRoute(r)
}
