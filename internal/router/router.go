package router

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/skillshare-platform/backend/internal/handlers"
	"github.com/skillshare-platform/backend/internal/middleware"
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"github.com/skillshare-platform/backend/internal/services"
	"github.com/skillshare-platform/backend/pkg/config"
	"github.com/skillshare-platform/backend/pkg/media"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *fbauth.Client, cfg *config.Config, log *zap.SugaredLogger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Fan{},
		&models.ProgressUpdate{},
		&models.Notification{},
	); err != nil {
		return err
	}
	log.Info("auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.Static("/media", cfg.UploadDir)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	progressRepo := repositories.NewPostgresProgressRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Services ---
	notifier := services.NewStoreNotifier(notificationRepo, log)
	visibility := services.NewVisibilityFilter(followRepo)
	uploads := media.NewStore(cfg.UploadDir)
	userService := services.NewUserService(userRepo, followRepo, services.NewBcryptHasher(), uploads, log)
	followService := services.NewFollowService(userRepo, followRepo, notifier, log)
	progressService := services.NewProgressService(userRepo, progressRepo, followRepo, visibility, notifier, log)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, log)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userService, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(e.Group("/api/auth"))

	// --- Viewer-aware public reads (principal resolved when present) ---
	public := e.Group("/api")
	public.Use(middleware.MaybeAuthenticate(firebaseAuthClient, cfg.JWTSecret))
	progressHandler := handlers.NewProgressHandler(progressService)
	progressHandler.RegisterListRoute(public)
	userHandler := handlers.NewUserHandler(userService, followService)
	public.GET("/users/:id", userHandler.GetUser)
	public.GET("/users/:id/followers", userHandler.GetFollowers)
	public.GET("/users/:id/following", userHandler.GetFollowing)

	// --- Protected routes (require an authenticated principal) ---
	api := e.Group("/api")
	api.Use(middleware.Authenticate(firebaseAuthClient, cfg.JWTSecret))

	authHandler.RegisterSessionRoutes(api)
	api.PUT("/users/:id", userHandler.UpdateProfile)

	followHandler := handlers.NewFollowHandler(followService, userService)
	followHandler.RegisterFollowRoutes(api)

	progressHandler.RegisterProgressRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("routes configured")
	return nil
}
