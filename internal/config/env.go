package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	DatabaseURL string
	JWTSecret   string

	// AI provider selection. One of: huggingface | groq | gemini | fallback.
	AIProvider        string
	HuggingFaceAPIKey string
	HuggingFaceModel  string
	GroqAPIKey        string
	GroqModel         string
	GeminiAPIKey      string
	GeminiModel       string

	ResendAPIKey      string
	MailFrom          string
	EarlyAccessNotify string

	PostHogAPIKey string
	PostHogHost   string

	AwsAccessKey string
	AwsSecretKey string
	AwsRegion    string
	UploadBucket string

	FirmName string
}

// LoadConfig reads the environment, with an optional .env overlay.
// Missing credentials never fail startup: each subsystem degrades to a
// no-op or fallback when its keys are absent.
func LoadConfig() *Config {

	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "production"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),

		AIProvider:        getEnv("AI_PROVIDER", "huggingface"),
		HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
		HuggingFaceModel:  getEnv("HUGGINGFACE_MODEL", "microsoft/DialoGPT-medium"),
		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GroqModel:         getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		MailFrom:          getEnv("MAIL_FROM", "SmartProBono <hello@smartprobono.org>"),
		EarlyAccessNotify: getEnv("EARLY_ACCESS_NOTIFY", "bferrell514@gmail.com"),

		PostHogAPIKey: getEnv("POSTHOG_API_KEY", ""),
		PostHogHost:   getEnv("POSTHOG_HOST", "https://us.i.posthog.com"),

		AwsAccessKey: getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey: getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:    getEnv("AWS_REGION", "us-east-2"),
		UploadBucket: getEnv("UPLOAD_BUCKET", ""),

		FirmName: getEnv("FIRM_NAME", "[Your Firm Name]"),
	}
}

// Development reports whether debug detail may be included in error bodies.
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
