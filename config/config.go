package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	AWSRegion         string
	S3Bucket          string
	ProfilesTable     string
	InteractionsTable string
	// StoreBackend selects "dynamo" or "memory" (local development).
	StoreBackend   string
	JWTSecret      string
	AllowedOrigins []string
}

func LoadConfig() *Config {
	// Only effective locally; ignored in production when no .env exists.
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		AWSRegion:         getEnv("AWS_REGION", "ap-south-1"),
		S3Bucket:          getEnv("S3_BUCKET_NAME", ""),
		ProfilesTable:     getEnv("PROFILES_TABLE", "Profiles"),
		InteractionsTable: getEnv("INTERACTIONS_TABLE", "Interactions"),
		StoreBackend:      getEnv("STORE_BACKEND", "dynamo"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
