package llm

import (
	"context"
	"log"
	"strings"

	"github.com/smartprobono/intake-api/internal/config"
)

// NewProvider selects the configured completion provider once at startup.
// A nil return (with nil error) means no provider is usable and callers
// should rely on the rule-based fallback.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.AIProvider)) {
	case "huggingface":
		if cfg.HuggingFaceAPIKey == "" {
			log.Println("HUGGINGFACE_API_KEY not set; using rule-based responder")
			return nil, nil
		}
		return NewHuggingFace(cfg.HuggingFaceAPIKey, cfg.HuggingFaceModel), nil
	case "groq":
		if cfg.GroqAPIKey == "" {
			log.Println("GROQ_API_KEY not set; using rule-based responder")
			return nil, nil
		}
		return NewGroq(cfg.GroqAPIKey, cfg.GroqModel), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Println("GEMINI_API_KEY not set; using rule-based responder")
			return nil, nil
		}
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "fallback", "":
		return nil, nil
	default:
		log.Printf("unknown AI_PROVIDER %q; using rule-based responder", cfg.AIProvider)
		return nil, nil
	}
}
