package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds everything main wires into the router and services. It is
// constructed once and passed down; nothing else reads os.Getenv.
type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	StorageDir    string
	PublicBaseURL string

	PlannerAPIKey   string
	PlannerEndpoint string
}

func LoadEnv() Env {
	// .env is optional; deployments usually set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName: getEnv("DB_NAME", "alfatih_travel"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		StorageDir:    getEnv("STORAGE_DIR", "storage"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		PlannerAPIKey:   strings.TrimSpace(os.Getenv("PLANNER_API_KEY")),
		PlannerEndpoint: getEnv("PLANNER_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models/gemini-3-flash-preview:generateContent"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
