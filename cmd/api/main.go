package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/oottupura/oottupura-api/internal/application/service"
	"github.com/oottupura/oottupura-api/internal/config"
	"github.com/oottupura/oottupura-api/internal/infrastructure/database"
	"github.com/oottupura/oottupura-api/internal/infrastructure/repository"
	"github.com/oottupura/oottupura-api/internal/presentation/http/handler"
	"github.com/oottupura/oottupura-api/internal/presentation/http/routes"
	"github.com/oottupura/oottupura-api/pkg/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize JWT manager for the auth perimeter
	jwtManager := utils.NewJWTManager(cfg.Auth.Secret, cfg.Auth.ExpiryHours)

	// Initialize repositories
	reportingRepo := repository.NewReportingRepository(db)

	// Initialize services
	reportService := service.NewReportService(reportingRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Report: handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("port", port).
		Str("env", cfg.App.Env).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
