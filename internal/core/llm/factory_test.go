package llm

import (
	"context"
	"testing"

	"github.com/smartprobono/intake-api/internal/config"
)

func TestNewProviderSelection(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		cfg     config.Config
		wantNil bool
	}{
		{"empty provider", config.Config{}, true},
		{"explicit fallback", config.Config{AIProvider: "fallback"}, true},
		{"unknown provider", config.Config{AIProvider: "openai"}, true},
		{"groq without key", config.Config{AIProvider: "groq"}, true},
		{"huggingface without key", config.Config{AIProvider: "huggingface"}, true},
		{"groq with key", config.Config{AIProvider: "groq", GroqAPIKey: "k", GroqModel: "m"}, false},
		{"case insensitive", config.Config{AIProvider: "Groq", GroqAPIKey: "k", GroqModel: "m"}, false},
		{"huggingface with key", config.Config{AIProvider: "huggingface", HuggingFaceAPIKey: "k", HuggingFaceModel: "m"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProvider(ctx, &tc.cfg)
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if (p == nil) != tc.wantNil {
				t.Fatalf("provider = %v, wantNil = %v", p, tc.wantNil)
			}
		})
	}
}
