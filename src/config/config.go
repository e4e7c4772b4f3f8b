package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. It is built once in
// main and handed to the services that need it.
type Config struct {
	DatabaseDSN   string
	ServerAddr    string
	JWTSecret     string
	TokenTTL      time.Duration
	BorrowLimit   int
	AdminUsername string
	AdminPassword string
}

// Load reads the configuration from the environment. A .env file is honored
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := &Config{
		DatabaseDSN:   os.Getenv("DB_DSN"),
		ServerAddr:    getEnv("SERVER_HOST", ":8080"),
		JWTSecret:     getEnv("JWT_SECRET", "library-dev-secret"),
		TokenTTL:      12 * time.Hour,
		BorrowLimit:   3,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
	}

	if raw := os.Getenv("BORROW_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			log.Printf("Ignoring invalid BORROW_LIMIT %q, keeping default %d\n", raw, cfg.BorrowLimit)
		} else {
			cfg.BorrowLimit = limit
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
