package main

import (
	"log"
	"net/http"

	"github.com/freshnest/freshnest-cleaning-api/config"
	"github.com/freshnest/freshnest-cleaning-api/controllers"
	"github.com/freshnest/freshnest-cleaning-api/middleware"
	"github.com/freshnest/freshnest-cleaning-api/models"
	"github.com/freshnest/freshnest-cleaning-api/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Basic logging
	log.Println("Starting FreshNest Cleaning booking server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.Service{}, &models.Booking{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the default catalog on first startup
	if err := services.SeedDefaultServices(db); err != nil {
		log.Fatalf("Failed to seed services: %v", err)
	}

	// Outbound email is optional; bookings succeed without it
	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.MailEnabled() {
		smtpNotifier, err := services.NewSMTPNotifier(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize mail client: %v", err)
		}
		notifier = smtpNotifier
		log.Println("Email notifications enabled")
	} else {
		log.Println("SMTP_HOST not set, email notifications disabled")
	}

	// Catalog image storage is optional; the catalog falls back to the
	// placeholder image references
	var images services.CatalogImages
	if cfg.ImagesEnabled() {
		store, err := services.NewS3ObjectStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize object store: %v", err)
		}
		images = services.NewCatalogImages(store)
		log.Println("Catalog image storage enabled")
	} else {
		log.Println("AWS_S3_BUCKET not set, catalog image uploads disabled")
	}

	bookingController := controllers.NewBookingController(db, notifier, images)
	adminController := controllers.NewAdminController(db, images)

	router := setupRouter(bookingController, adminController)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the HTTP surface: the public booking flow, the admin
// dashboard, and the health endpoints
func setupRouter(bc *controllers.BookingController, ac *controllers.AdminController) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())
	router.LoadHTMLGlob("templates/*.html")

	router.GET("/health", healthCheck)
	router.GET("/database/status", databaseStatus)

	// Public booking flow
	router.GET("/services", bc.ListServices)
	router.GET("/services/:id/booking-form", bc.ShowBookingForm)
	router.POST("/bookings", bc.CreateBooking)
	router.GET("/bookings/:reference", bc.ShowConfirmation)

	// Admin surface (unprotected in this design)
	admin := router.Group("/admin")
	{
		admin.GET("/bookings", ac.Dashboard)
		admin.GET("/bookings/:id", ac.GetBooking)
		admin.POST("/bookings/:id/confirm", ac.ConfirmBooking)
		admin.POST("/bookings/:id/cancel", ac.CancelBooking)
		admin.GET("/services", ac.ListServices)
		admin.GET("/services/new", ac.NewServiceForm)
		admin.POST("/services", ac.CreateService)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FreshNest Cleaning booking API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
