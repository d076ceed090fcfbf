package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hrms-backend/config"
	"hrms-backend/internal/delivery/http/api"
	"hrms-backend/internal/domain"
	"hrms-backend/internal/repository/postgres"
	"hrms-backend/internal/usecase"
	"hrms-backend/pkg/auth"
	"hrms-backend/pkg/database"
	"hrms-backend/pkg/logger"
	"hrms-backend/pkg/redisclient"
	"hrms-backend/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HRMS backend", "port", cfg.Port)

	gin.SetMode(cfg.GinEnv)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, dbPool); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Error("Failed to create upload directory", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	rdb, err := redisclient.New(cfg.RedisURL)
	if err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		rdb = nil
	}

	// 5. Setup Repositories
	superAdminRepo := postgres.NewSuperAdminRepository(dbPool)
	clientRepo := postgres.NewClientRepository(dbPool)
	hrRepo := postgres.NewHRRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	if err := seedSuperAdmin(ctx, cfg, superAdminRepo); err != nil {
		logger.Log.Error("Failed to seed superadmin account", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours)
	authUC := usecase.NewAuthUsecase(superAdminRepo, clientRepo, hrRepo, tokens)
	superAdminUC := usecase.NewSuperAdminUsecase(clientRepo, hrRepo, candidateRepo, cfg.BcryptCost)
	hrUC := usecase.NewHRUsecase(clientRepo, hrRepo, jobRepo, candidateRepo)
	clientUC := usecase.NewClientUsecase(jobRepo, candidateRepo)
	resumeUC := usecase.NewResumeUsecase()

	// 7. Setup Router
	router := api.NewRouter(api.RouterDeps{
		AuthUC:       authUC,
		SuperAdminUC: superAdminUC,
		HRUC:         hrUC,
		ClientUC:     clientUC,
		ResumeUC:     resumeUC,
		Tokens:       tokens,
		Redis:        rdb,
		Config:       cfg,
	})

	// 8. Start Server
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// seedSuperAdmin creates the bootstrap superadmin account on an empty
// installation so the system is reachable on first run.
func seedSuperAdmin(ctx context.Context, cfg *config.Config, repo domain.SuperAdminRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.SuperAdmin{
		ID:           uuid.NewString(),
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Log.Info("Seeded default superadmin account", "email", cfg.SeedAdminEmail)
	return nil
}
