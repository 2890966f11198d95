package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ribbitly/backend/internal/handlers"
	"github.com/ribbitly/backend/internal/metrics"
	"github.com/ribbitly/backend/internal/middleware"
	"github.com/ribbitly/backend/internal/models"
	"github.com/ribbitly/backend/internal/notify"
	"github.com/ribbitly/backend/internal/repositories"
	"github.com/ribbitly/backend/internal/services"
	"github.com/ribbitly/backend/pkg/security"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, notifier notify.Notifier, m *metrics.Metrics) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Relationship{},
		&models.Micropost{},
		&models.NotificationPreference{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	relationshipRepo := repositories.NewPostgresRelationshipRepository(db)
	micropostRepo := repositories.NewPostgresMicropostRepository(db)
	preferenceRepo := repositories.NewPostgresPreferenceRepository(db)

	// --- Initialize Services ---
	hasher := security.NewBcryptHasher()
	userService := services.NewUserService(userRepo, hasher)
	micropostService := services.NewMicropostService(micropostRepo, userRepo, m)
	relationshipService := services.NewRelationshipService(relationshipRepo, userRepo, preferenceRepo, notifier, m)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	userHandler := handlers.NewUserHandler(userService, userRepo, relationshipRepo)
	userHandler.RegisterUserRoutes(api)

	micropostHandler := handlers.NewMicropostHandler(micropostService)
	micropostHandler.RegisterMicropostRoutes(api)

	feedHandler := handlers.NewFeedHandler(micropostService, userRepo)
	feedHandler.RegisterFeedRoutes(api)

	followHandler := handlers.NewFollowHandler(relationshipService, relationshipRepo)
	followHandler.RegisterFollowRoutes(api)

	preferenceHandler := handlers.NewPreferenceHandler(preferenceRepo)
	preferenceHandler.RegisterPreferenceRoutes(api)

	log.Println("All routes configured.")
}
