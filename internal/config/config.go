package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Cfg is the global configuration loaded at startup.
var Cfg Config

// Config holds all application configuration.
type Config struct {
	// Server
	Port    string
	BaseURL string

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string

	// Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string

	// Contact email delivery
	ResendAPIKey     string
	ContactToEmail   string
	ContactFromEmail string
	ContactReplyTo   string

	// Rate limiter
	RateLimitRPS   int
	RateLimitBurst int

	// Gzip
	GzipEnabled bool

	// Insights content
	InsightsDir string
}

// Load reads .env (if present) and populates Cfg from environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables")
	}

	Cfg = Config{
		Port:    envOr("PORT", "8080"),
		BaseURL: envOr("BASE_URL", "https://stonebranchcapital.com"),

		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: envOr("SENTRY_ENVIRONMENT", "production"),
		SentryRelease:     envOr("SENTRY_RELEASE", "stonebranch@1.0.0"),

		TurnstileSiteKey:   os.Getenv("TURNSTILE_SITE_KEY"),
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ContactToEmail:   os.Getenv("CONTACT_TO_EMAIL"),
		ContactFromEmail: os.Getenv("CONTACT_FROM_EMAIL"),
		ContactReplyTo:   os.Getenv("CONTACT_REPLY_TO"),

		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 30),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 60),

		GzipEnabled: envBool("GZIP_ENABLED", true),

		InsightsDir: envOr("INSIGHTS_DIR", "content/insights"),
	}

	log.Printf("config: loaded (port=%s, turnstile=%v, mail=%v)",
		Cfg.Port, Cfg.TurnstileSecretKey != "", Cfg.ResendAPIKey != "")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
