package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoURI     string
	PasetoSecret string
}

// LoadConfig loads configuration from the environment (.env in development).
// The PASETO secret is validated eagerly so a misconfigured deployment fails
// at startup rather than on the first login.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded (expected in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		log.Fatal("PASETO_SECRET is not set")
	}

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET is not valid base64 URL-encoded: %v", err)
	}
	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET must decode to exactly 32 bytes, got %d", len(secretBytes))
	}

	return &AppConfig{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     getEnv("MONGOSTRING", ""),
		PasetoSecret: secretBase64,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
