package routes

import (
	"fmt"
	"net/http"
	"time"

	"identity-service-backend/internal/api/handlers"
	"identity-service-backend/internal/api/middleware"
	"identity-service-backend/internal/auth"
	"identity-service-backend/internal/config"
	"identity-service-backend/internal/repository"
	"identity-service-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := service.NewValidator()

	// Initialize auth services
	tokenService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organisationRepo := repository.NewOrganisationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, tokenService, hasher, validate)
	organisationService := service.NewOrganisationService(organisationRepo, userRepo, validate)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)

	// Public routes
	router.GET("/", homeHandler.Home)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API routes - all endpoints require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := api.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}

		// Organisation routes
		organisations := api.Group("/organisations")
		{
			organisations.GET("", organisationHandler.ListOrganisations)
			organisations.POST("", organisationHandler.CreateOrganisation)
			organisations.GET("/:orgId", organisationHandler.GetOrganisation)
			organisations.POST("/:orgId/users", organisationHandler.AddMember)
		}
	}

	// Unknown routes get a JSON 404 rather than gin's default text body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "Not found",
			"message": "Resource not found",
		})
	})

	return router, nil
}
