package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "AI_PROVIDER", "JWT_SECRET", "FIRM_NAME"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.AppEnv != "production" {
		t.Fatalf("default app env = %q", cfg.AppEnv)
	}
	if cfg.AIProvider != "huggingface" {
		t.Fatalf("default provider = %q", cfg.AIProvider)
	}
	if cfg.FirmName != "[Your Firm Name]" {
		t.Fatalf("default firm name = %q", cfg.FirmName)
	}
	if cfg.Development() {
		t.Fatal("production config reports development")
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "development")
	t.Setenv("AI_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "gk")

	cfg := LoadConfig()
	if cfg.Port != "9999" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if !cfg.Development() {
		t.Fatal("development env not detected")
	}
	if cfg.AIProvider != "groq" || cfg.GroqAPIKey != "gk" {
		t.Fatalf("provider config = %q / %q", cfg.AIProvider, cfg.GroqAPIKey)
	}
}
