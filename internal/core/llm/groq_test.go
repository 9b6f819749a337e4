package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/smartprobono/intake-api/internal/core"
	"github.com/smartprobono/intake-api/internal/models"
)

func makeMessages(n int) []models.Message {
	msgs := make([]models.Message, n)
	for i := range msgs {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		msgs[i] = models.Message{Role: role, Content: "msg " + strconv.Itoa(i)}
	}
	return msgs
}

func newTestGroq(url string) *Groq {
	p := NewGroq("test-key", "llama-3.1-8b-instant")
	p.BaseURL = url
	return p
}

func TestGroqCompleteSendsStructuredMessages(t *testing.T) {
	var got groqRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization header = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  drafted reply  "}}]}`)
	}))
	defer srv.Close()

	history := makeMessages(2)
	text, err := newTestGroq(srv.URL).Complete(context.Background(), "system prompt", history, "write a letter")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "drafted reply" {
		t.Fatalf("text = %q, want trimmed reply", text)
	}

	if len(got.Messages) != 4 {
		t.Fatalf("sent %d messages, want system + 2 history + user", len(got.Messages))
	}
	if got.Messages[0].Role != models.RoleSystem || got.Messages[0].Content != "system prompt" {
		t.Fatalf("first message = %+v, want the system prompt", got.Messages[0])
	}
	last := got.Messages[len(got.Messages)-1]
	if last.Role != models.RoleUser || last.Content != "write a letter" {
		t.Fatalf("last message = %+v, want the latest user turn", last)
	}
	if got.MaxTokens != 2000 {
		t.Fatalf("max_tokens = %d, want 2000", got.MaxTokens)
	}
}

func TestGroqCompleteOmitsEmptySystemMessage(t *testing.T) {
	var got groqRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`)
	}))
	defer srv.Close()

	if _, err := newTestGroq(srv.URL).Complete(context.Background(), "", nil, "draft the letter"); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if len(got.Messages) != 1 {
		t.Fatalf("sent %d messages, want only the user turn", len(got.Messages))
	}
	if got.Messages[0].Role != models.RoleUser {
		t.Fatalf("first message role = %q, want user", got.Messages[0].Role)
	}
}

func TestGroqCompleteNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestGroq(srv.URL).Complete(context.Background(), "s", nil, "hi")
	if !errors.Is(err, core.ErrProvider) {
		t.Fatalf("err = %v, want core.ErrProvider", err)
	}
}

func TestGroqCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	text, err := newTestGroq(srv.URL).Complete(context.Background(), "s", nil, "hi")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty string for empty choices", text)
	}
}
