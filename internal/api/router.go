package api

import (
	"time"

	"github.com/Marco-XM/arixyDashboardBack/internal/api/handlers"
	"github.com/Marco-XM/arixyDashboardBack/internal/api/middleware"
	"github.com/Marco-XM/arixyDashboardBack/internal/config"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the Gin router with all routes configured
func SetupRouter(db *gorm.DB, cfg *config.Config, blobs storage.BlobStore) (*gin.Engine, *middleware.JWTManager) {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	jwtManager := middleware.NewJWTManager(cfg.JWTSecret, middleware.DefaultTokenExpiry)

	// Initialize services
	logService := services.NewLogServiceWithLevel(db, cfg.LogLevel)
	userService := services.NewUserService(db)
	configService := services.NewEmailConfigService(db, cfg.GetEncryptionKey())
	templateService := services.NewTemplateService(db)
	mailerService := services.NewMailerService(db, configService)
	bookingService := services.NewBookingService(db)
	blockedDateService := services.NewBlockedDateService(db)
	eventService := services.NewEventService(db, blobs)
	cardService := services.NewCardService(db, blobs)
	clientService := services.NewClientService(db, blobs)
	contactService := services.NewContactService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, jwtManager, logService)
	userHandler := handlers.NewUserHandler(userService, logService)
	marketingHandler := handlers.NewMarketingHandler(configService, templateService, mailerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	blockedDateHandler := handlers.NewBlockedDateHandler(blockedDateService)
	eventHandler := handlers.NewEventHandler(eventService)
	cardHandler := handlers.NewCardHandler(cardService)
	clientHandler := handlers.NewClientHandler(clientService)
	contactHandler := handlers.NewContactHandler(contactService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check endpoint (no auth required)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Auth routes (no JWT required)
		auth := api.Group("/auth")
		{
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.POST("/user/login", authHandler.UserLogin)
			auth.POST("/signup", authHandler.Signup)
		}

		// Public website routes
		api.POST("/bookings", bookingHandler.CreateBooking)
		api.GET("/blocked-dates", blockedDateHandler.GetBlockedDates)
		api.GET("/events", eventHandler.GetEvents)
		api.GET("/cards", cardHandler.GetCards)
		api.GET("/cards/:id", cardHandler.GetCard)
		api.GET("/clients/active", clientHandler.GetActiveClients)
		api.POST("/contacts", contactHandler.CreateContact)
		api.POST("/reports", reportHandler.CreateReport)
		api.GET("/users/:id/validate", userHandler.ValidateUser)

		// Protected dashboard routes (JWT required)
		protected := api.Group("")
		protected.Use(middleware.JWTMiddleware(jwtManager))
		{
			protected.GET("/auth/me", authHandler.GetCurrentUser)

			// Account management (admin only)
			users := protected.Group("/users", middleware.AdminOnlyMiddleware())
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/count", userHandler.CountUsers)
				users.GET("/admins", userHandler.ListAdmins)
				users.GET("/admins/count", userHandler.CountAdmins)
				users.DELETE("/admins/:id", userHandler.DeleteAdmin)
				users.GET("/:id/username", userHandler.GetUsername)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			// Outbound marketing email
			marketing := protected.Group("/marketing")
			{
				marketing.POST("/send-email", marketingHandler.SendEmail)

				marketing.GET("/templates", marketingHandler.GetTemplates)
				marketing.POST("/templates", marketingHandler.CreateTemplate)
				marketing.PUT("/templates/:id", marketingHandler.UpdateTemplate)
				marketing.DELETE("/templates/:id", marketingHandler.DeleteTemplate)

				marketing.GET("/test-config", marketingHandler.TestEmailConfig)
				marketing.GET("/test-config/:id", marketingHandler.TestEmailConfig)

				marketing.GET("/email-config", marketingHandler.GetEmailConfigs)
				marketing.POST("/email-config", marketingHandler.SaveEmailConfig)
				marketing.PUT("/email-config/:id", marketingHandler.UpdateEmailConfig)
				marketing.DELETE("/email-config", marketingHandler.DeleteFirstEmailConfig)
				marketing.DELETE("/email-config/:id", marketingHandler.DeleteEmailConfig)
				marketing.PUT("/email-config/:id/default", marketingHandler.SetDefaultEmailConfig)
			}

			// Booking management
			bookings := protected.Group("/bookings")
			{
				bookings.GET("", bookingHandler.GetBookings)
				bookings.GET("/confirmed", bookingHandler.GetConfirmedBookings)
				bookings.GET("/count", bookingHandler.CountBookings)
				bookings.PUT("/:id/confirm", bookingHandler.ConfirmBooking)
				bookings.DELETE("/:id", bookingHandler.DeclineBooking)
			}

			// Calendar availability
			protected.POST("/blocked-dates", blockedDateHandler.AddBlockedDate)
			protected.GET("/blocked-dates/count", blockedDateHandler.CountBlockedDates)
			protected.DELETE("/blocked-dates/:id", blockedDateHandler.RemoveBlockedDate)

			// Gallery management
			protected.POST("/events", eventHandler.UploadEvent)
			protected.GET("/events/count", eventHandler.CountEvents)
			protected.DELETE("/events/:id", eventHandler.DeleteEvent)

			// Product card management
			cards := protected.Group("/cards")
			{
				cards.POST("", cardHandler.CreateCard)
				cards.GET("/count", cardHandler.CountCards)
				cards.PUT("/:id", cardHandler.UpdateCard)
				cards.DELETE("/:id", cardHandler.DeleteCard)
				cards.POST("/:id/details", cardHandler.AddCardDetail)
				cards.PUT("/:id/details/:detailId", cardHandler.UpdateCardDetail)
				cards.DELETE("/:id/details/:detailId", cardHandler.DeleteCardDetail)
			}

			// Client logo wall management
			clients := protected.Group("/clients")
			{
				clients.GET("", clientHandler.ListClients)
				clients.GET("/stats", clientHandler.GetClientStats)
				clients.GET("/:id", clientHandler.GetClient)
				clients.POST("", clientHandler.CreateClient)
				clients.PUT("/:id", clientHandler.UpdateClient)
				clients.PUT("/:id/toggle", clientHandler.ToggleClientStatus)
				clients.DELETE("/:id", clientHandler.DeleteClient)
			}

			// Inquiry management
			contacts := protected.Group("/contacts")
			{
				contacts.GET("", contactHandler.ListContacts)
				contacts.GET("/stats", contactHandler.GetContactStats)
				contacts.GET("/:id", contactHandler.GetContact)
				contacts.PUT("/:id", contactHandler.UpdateContact)
				contacts.DELETE("/:id", contactHandler.DeleteContact)
			}

			// Report management
			reports := protected.Group("/reports")
			{
				reports.GET("", reportHandler.GetReports)
				reports.GET("/count", reportHandler.CountReports)
				reports.DELETE("/:id", reportHandler.DeleteReport)
			}
		}
	}

	return router, jwtManager
}
