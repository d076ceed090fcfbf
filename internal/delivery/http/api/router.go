package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"hrms-backend/config"
	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	SuperAdminUC domain.SuperAdminUsecase
	HRUC         domain.HRUsecase
	ClientUC     domain.ClientUsecase
	ResumeUC     domain.ResumeUsecase
	Tokens       *auth.TokenManager
	Redis        *goredis.Client
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(middleware.SecurityHeaders())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	root := r.Group("/api")

	// Health Check
	root.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored resumes are served statically under the same prefix the API
	// writes into candidate resumeUrl fields.
	r.Static("/uploads/resumes", deps.Config.UploadDir)

	loginLimiter := middleware.LoginRateLimit(deps.Redis, middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "login",
	})

	superadmin := root.Group("/superadmin", middleware.AuthSuperAdmin(deps.Tokens, deps.AuthUC))
	hr := root.Group("/hr", middleware.AuthHR(deps.Tokens, deps.AuthUC))
	client := root.Group("/client", middleware.AuthClient(deps.Tokens, deps.AuthUC))
	candidate := root.Group("/candidate")

	NewAuthHandler(root, superadmin, hr, client, loginLimiter, deps.AuthUC)
	NewSuperAdminHandler(superadmin, deps.SuperAdminUC)
	NewHRHandler(hr, middleware.ManagerOnly(), deps.HRUC, deps.Config)
	NewClientHandler(client, deps.ClientUC)
	NewResumeHandler(candidate, deps.ResumeUC, deps.Config)

	return r
}
