package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	CORSOrigins   string
	LogFormat     string
	LogColors     bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}

	secure, err := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}

	colors, err := strconv.ParseBool(getEnv("LOG_COLORS", "true"))
	if err != nil {
		return nil, fmt.Errorf("LOG_COLORS: %w", err)
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),
		SessionTTL:    ttl,
		CookieSecure:  secure,
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogColors:     colors,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
