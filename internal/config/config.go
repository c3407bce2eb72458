package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBConn         string
	LogLevel       string
	JWTSecret      string
	QuotesURL      string
	QuotesSchedule string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=pocketly sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		QuotesURL:      getEnv("QUOTES_URL", "https://quotes.pocketly.app/feed"),
		QuotesSchedule: getEnv("QUOTES_SCHEDULE", "@every 1h"),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "noreply@pocketly.app"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.QuotesURL == "" {
		return nil, fmt.Errorf("QUOTES_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
