package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every external knob the gateway needs. It is built once in
// main and handed to constructors explicitly; nothing reads the environment
// after LoadEnv returns.
type Config struct {
	Port          string
	SessionSecret string
	CORSOrigin    string

	// Remote HR backend that owns payroll, attendance and the rest of the
	// business logic. This service only proxies to it.
	BackendAPIURL string

	// Log ingestion for client-reported errors. Token is mandatory: a
	// misconfigured error pipeline should stop the process at boot, not
	// drop reports silently at runtime.
	LogIngestURL   string
	LogIngestToken string

	// Chat-completion service behind the announcement drafting helper.
	CompletionAPIURL string
	CompletionAPIKey string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Where the guard sends users that fail a permission check.
	FallbackRoute string
}

func LoadEnv() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		SessionSecret: mustEnv("SESSION_SECRET"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "*"),

		BackendAPIURL: mustEnv("BACKEND_API_URL"),

		LogIngestURL:   getEnv("LOG_INGEST_URL", "https://in.logs.betterstack.com"),
		LogIngestToken: mustEnv("LOG_INGEST_TOKEN"),

		CompletionAPIURL: getEnv("COMPLETION_API_URL", "https://api.openai.com/v1/chat/completions"),
		CompletionAPIKey: mustEnv("COMPLETION_API_KEY"),

		GoogleClientID:     mustEnv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: mustEnv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  mustEnv("GOOGLE_REDIRECT_URL"),

		FallbackRoute: getEnv("FALLBACK_ROUTE", "/self-service"),
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
