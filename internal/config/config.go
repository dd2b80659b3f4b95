package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the settings needed to run the API server.
type AppConfig struct {
	ListenAddr        string
	Port              string
	AppEnv            string
	LogLevel          string
	GinMode           string
	DatabaseURL       string
	DatabasePath      string
	SessionSecret     string
	SuperRootUserName string
	SuperRootPassword string
	Mail              MailConfig
	Platform          string
}

// MailConfig selects and configures the outbound notification provider.
type MailConfig struct {
	Provider     string
	From         string
	ContactEmail string
	AWSRegion    string
	ResendAPIKey string
	Timeout      time.Duration
}

// devSessionSecret signs session cookies when SESSION_SECRET is unset. It is
// public, so Validate rejects it in production.
const devSessionSecret = "studentorg-dev-secret"

// ErrMissingSessionSecret is returned by Validate when production runs
// without SESSION_SECRET.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set when APP_ENV=production")

// IsProduction reports whether error details must be hidden from clients.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Validate rejects settings that are unsafe for the selected environment.
func (c AppConfig) Validate() error {
	if c.IsProduction() && (c.SessionSecret == "" || c.SessionSecret == devSessionSecret) {
		return ErrMissingSessionSecret
	}
	return nil
}

// Load reads the configuration from the environment, loading an optional .env
// file first. Missing values fall back to development defaults.
func Load() AppConfig {
	_ = godotenv.Load()

	port := envOr("PORT", "8080")
	listenAddr := envOr("LISTEN_ADDR", fmt.Sprintf(":%s", port))

	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MAIL_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		AppEnv:            envOr("APP_ENV", "development"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		GinMode:           envOr("GIN_MODE", "release"),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePath:      envOr("DATABASE_PATH", "studentorg.db"),
		SessionSecret:     envOr("SESSION_SECRET", devSessionSecret),
		SuperRootUserName: strings.TrimSpace(os.Getenv("SUPER_ROOT_USER_NAME")),
		SuperRootPassword: strings.TrimSpace(os.Getenv("SUPER_ROOT_PASSWORD")),
		Mail: MailConfig{
			Provider:     strings.ToLower(envOr("MAIL_PROVIDER", "log")),
			From:         envOr("MAIL_FROM", "noreply@studentorg.com"),
			ContactEmail: strings.TrimSpace(os.Getenv("CONTACT_EMAIL")),
			AWSRegion:    envOr("AWS_REGION", "us-east-1"),
			ResendAPIKey: strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			Timeout:      timeout,
		},
		Platform: detectPlatform(),
	}
}

// detectPlatform mirrors the hosting check exposed on the API root.
func detectPlatform() string {
	if strings.TrimSpace(os.Getenv("VERCEL")) != "" || strings.TrimSpace(os.Getenv("VERCEL_ENV")) != "" {
		return "Vercel"
	}
	return "Local/Other"
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
