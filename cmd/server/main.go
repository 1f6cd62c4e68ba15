package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/skillshare-platform/backend/internal/router"
	"github.com/skillshare-platform/backend/pkg/config"
	"github.com/skillshare-platform/backend/pkg/firebase"
	"github.com/skillshare-platform/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Initialize Firebase when identity-provider login is configured
	var authClient *fbauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		authClient = firebaseApp.AuthClient
	} else {
		sugar.Info("firebase credentials not set, identity-provider login disabled")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, authClient, cfg, sugar); err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
