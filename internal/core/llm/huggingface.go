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

const hfDefaultBaseURL = "https://api-inference.huggingface.co/models"

// HuggingFace calls the Inference API with a single concatenated prompt.
type HuggingFace struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

func NewHuggingFace(apiKey, model string) *HuggingFace {
	return &HuggingFace{
		BaseURL: hfDefaultBaseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *HuggingFace) Complete(ctx context.Context, system string, history []models.Message, userMessage string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: fmt.Sprintf("%s\n\nUser: %s\nErmi:", system, userMessage),
		Parameters: hfParameters{
			MaxNewTokens:   200,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(p.BaseURL, "/"), p.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: huggingface: %v", core.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return "", fmt.Errorf("%w: huggingface: status %d: %s", core.ErrProvider, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var decoded hfResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: huggingface: decode: %v", core.ErrProvider, err)
	}
	if len(decoded) == 0 {
		return "", nil
	}
	return strings.TrimSpace(decoded[0].GeneratedText), nil
}

var _ Provider = (*HuggingFace)(nil)
