package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Port        string
	JWTSecret   string
	TokenExpiry time.Duration
	DataFile    string

	// The single vault account. The password is stored as a bcrypt hash;
	// the server never sees or keeps the plaintext.
	AccountEmail        string
	AccountPasswordHash string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	expiry := 72 * time.Hour
	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid TOKEN_EXPIRY %q, using default: %v", raw, err)
		} else {
			expiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenExpiry:         expiry,
		DataFile:            getEnv("DATA_FILE", "vault.json"),
		AccountEmail:        os.Getenv("VAULT_EMAIL"),
		AccountPasswordHash: os.Getenv("VAULT_PASSWORD_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
