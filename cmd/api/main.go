package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talenthub-backend/config"
	_ "go-talenthub-backend/docs" // Important for Swagger
	v1 "go-talenthub-backend/internal/delivery/http/v1"
	"go-talenthub-backend/internal/repository/postgres"
	"go-talenthub-backend/internal/usecase"
	"go-talenthub-backend/pkg/auth"
	"go-talenthub-backend/pkg/database"
	"go-talenthub-backend/pkg/logger"
	"go-talenthub-backend/pkg/redis"
	"go-talenthub-backend/pkg/storage"
	"go-talenthub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           TalentHub Backend API
// @version         1.0
// @description     Backend for the TalentHub talent marketplace: profiles, job postings and contact resolution.
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
	logger.Log.Info("Starting talenthub backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Object Storage (optional, photo upload unavailable without it)
	var store *storage.Client
	storageCfg := storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		WasabiEndpoint:  cfg.S3WasabiEndpoint,
	}
	if storageCfg.IsConfigured() {
		store, err = storage.NewClient(context.Background(), storageCfg)
		if err != nil {
			logger.Log.Error("Failed to setup object storage", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("Object storage not configured - photo upload will be unavailable")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, jobRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	contactUC := usecase.NewContactUsecase(userRepo, chatRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.JWKSUrl)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		JobUC:        jobUC,
		ContactUC:    contactUC,
		Storage:      store,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
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
