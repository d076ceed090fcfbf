package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBUrl  string
	GinEnv string
	// Auth
	JWTSecret     string
	TokenTTLHours int
	BcryptCost    int
	// Default SuperAdmin seeded on first boot (bootstrap convenience,
	// not a security boundary - rotate it immediately in production)
	SeedAdminEmail    string
	SeedAdminPassword string
	// Redis (optional; rate limiting falls back to in-memory when empty)
	RedisURL string
	// Rate Limiting
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
	// Uploads
	UploadMaxBytes int64
	UploadDir      string
	FrontendURL    string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env file exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "4000"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		GinEnv:            getEnv("GIN_MODE", "debug"),
		JWTSecret:         getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenTTLHours:     getEnvInt("ACCESS_TOKEN_TTL_HOURS", 8),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "super@admin.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "superadmin123"),
		RedisURL:          getEnv("REDIS_URL", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),

		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads/resumes"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: ACCESS_TOKEN_SECRET is missing. Issued tokens will not survive restarts securely.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
