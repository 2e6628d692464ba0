package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// Outbound mail transport.
	MailProvider       string // ses, sendgrid, or noop
	MailFromAddress    string
	MailFromName       string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	SendGridAPIKey     string

	// Notification recipients and locale.
	StaffAddress    string
	Timezone        string
	DispatchTimeout time.Duration
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production. We don't return an error here
	// because in production .env might not exist and we rely on system
	// environment variables.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		MailProvider:       getEnv("MAIL_PROVIDER", "noop"),
		MailFromAddress:    getEnv("MAIL_FROM_ADDRESS", "no-reply@example.net"),
		MailFromName:       os.Getenv("MAIL_FROM_NAME"),
		SESRegion:          getEnv("SES_REGION", "ap-northeast-1"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		StaffAddress:       getEnv("STAFF_ADDRESS", "sample@user.co.jp"),
		Timezone:           getEnv("TIMEZONE", "Asia/Tokyo"),
		DispatchTimeout:    10 * time.Second,
	}

	if s := os.Getenv("DISPATCH_TIMEOUT_SECONDS"); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("DISPATCH_TIMEOUT_SECONDS must be a positive integer, got %q", s)
		}
		cfg.DispatchTimeout = time.Duration(secs) * time.Second
	}

	if cfg.MailProvider == "ses" && (cfg.SESAccessKeyID == "" || cfg.SESSecretAccessKey == "") {
		return nil, fmt.Errorf("MAIL_PROVIDER=ses requires SES_ACCESS_KEY_ID and SES_SECRET_ACCESS_KEY")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
