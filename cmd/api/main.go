package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/mongodb"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for a job board with application reporting, using Clean Architecture.
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
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Databases
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	mongoDB, closeMongo, err := database.NewMongoConnection(cfg.MongoURL, cfg.MongoDBName)
	if err != nil {
		logger.Log.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer closeMongo()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}

	// 5. Setup File Storage
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to initialize upload directory", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	reportRepo := postgres.NewReportRepository(dbPool)
	blogRepo := mongodb.NewBlogRepository(mongoDB)

	// 7. Setup UseCases
	validate := validator.New()
	jwtManager := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(userRepo, jwtManager, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, store)
	companyUC := usecase.NewCompanyUsecase(companyRepo, userRepo, store, validate)
	blogUC := usecase.NewBlogUsecase(blogRepo, validate)
	reportUC := usecase.NewReportUsecase(reportRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		CompanyUC:     companyUC,
		BlogUC:        blogUC,
		ReportUC:      reportUC,
		JWTManager:    jwtManager,
		Config:        cfg,
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
