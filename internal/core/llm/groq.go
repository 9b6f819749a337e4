package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smartprobono/intake-api/internal/core"
	"github.com/smartprobono/intake-api/internal/models"
)

const groqDefaultBaseURL = "https://api.groq.com/openai/v1"

// Groq calls the OpenAI-compatible chat completions endpoint with a
// structured message list: system, trailing window, then the latest user turn.
type Groq struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
}

func NewGroq(apiKey, model string) *Groq {
	return &Groq{
		BaseURL: groqDefaultBaseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Groq) Complete(ctx context.Context, system string, history []models.Message, userMessage string) (string, error) {
	msgs := make([]groqMessage, 0, len(history)+2)
	if system != "" {
		msgs = append(msgs, groqMessage{Role: models.RoleSystem, Content: system})
	}
	for _, m := range history {
		msgs = append(msgs, groqMessage{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, groqMessage{Role: models.RoleUser, Content: userMessage})

	body, err := json.Marshal(groqRequest{
		Model:       p.Model,
		Messages:    msgs,
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(p.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: groq: %v", core.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return "", fmt.Errorf("%w: groq: status %d: %s", core.ErrProvider, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var decoded groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: groq: decode: %v", core.ErrProvider, err)
	}
	if len(decoded.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

var _ Provider = (*Groq)(nil)
