package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	FrontendURL string
	// Session token configuration
	JWTSecret       string
	TokenTTLMinutes int
	// Dashboard view parameters (reference defaults: 14 / 3 / 5 / 5)
	DeadlineHorizonDays int
	DeadlineUrgentDays  int
	DeadlineLimit       int
	RecentActivityLimit int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "data/jobtracker.db"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		TokenTTLMinutes:     getEnvInt("TOKEN_TTL_MINUTES", 24*60),
		DeadlineHorizonDays: getEnvInt("DEADLINE_HORIZON_DAYS", 14),
		DeadlineUrgentDays:  getEnvInt("DEADLINE_URGENT_DAYS", 3),
		DeadlineLimit:       getEnvInt("DEADLINE_LIMIT", 5),
		RecentActivityLimit: getEnvInt("RECENT_ACTIVITY_LIMIT", 5),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Using an insecure development default.")
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
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
