package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-volink-backend/config"
	_ "go-volink-backend/docs" // Important for Swagger
	v1 "go-volink-backend/internal/delivery/http/v1"
	"go-volink-backend/internal/matching"
	"go-volink-backend/internal/repository/postgres"
	"go-volink-backend/internal/usecase"
	"go-volink-backend/pkg/auth"
	"go-volink-backend/pkg/database"
	"go-volink-backend/pkg/email"
	"go-volink-backend/pkg/logger"
	"go-volink-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Volink API
// @version         1.0
// @description     Volunteer matching backend: opportunity discovery, capacity-checked applications and hour tracking.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting volink backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	volunteerRepo := postgres.NewVolunteerRepository(dbPool)
	opportunityRepo := postgres.NewOpportunityRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	organisationRepo := postgres.NewOrganisationRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notification emails will be logged only")
	}

	// 7. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	engine := matching.NewEngine(matching.DefaultWeights())

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	volunteerUC := usecase.NewVolunteerUsecase(volunteerRepo, opportunityRepo, applicationRepo,
		engine, validate, cfg.DefaultRecommendationLimit)
	opportunityUC := usecase.NewOpportunityUsecase(opportunityRepo, organisationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, opportunityRepo, organisationRepo,
		volunteerRepo, userRepo, notificationUC, emailService)
	organisationUC := usecase.NewOrganisationUsecase(organisationRepo, opportunityRepo, applicationRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		VolunteerUC:    volunteerUC,
		OpportunityUC:  opportunityUC,
		ApplicationUC:  applicationUC,
		OrganisationUC: organisationUC,
		NotificationUC: notificationUC,
		Tokens:         tokens,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
