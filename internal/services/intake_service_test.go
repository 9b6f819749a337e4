package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/smartprobono/intake-api/internal/core/llm"
	"github.com/smartprobono/intake-api/internal/models"
)

func userTurn(content string) []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: content}}
}

func TestRespondUsesProviderText(t *testing.T) {
	p := &fakeProvider{text: "Here is your reply."}
	s := NewIntakeService(p, nil)

	got := s.Respond(context.Background(), "", userTurn("hello"), "", "chat")
	if got != "Here is your reply." {
		t.Fatalf("reply = %q, want provider text", got)
	}
	if p.calls != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls)
	}
}

func TestRespondFallsBackOnProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	s := NewIntakeService(p, nil)

	got := s.Respond(context.Background(), "", userTurn("please draft a letter"), "", "chat")
	if got == "" {
		t.Fatal("reply is empty after provider error")
	}
	if !strings.Contains(got, "letter") {
		t.Fatalf("reply = %q, want keyword-routed fallback", got)
	}
}

func TestRespondFallsBackOnEmptyCompletion(t *testing.T) {
	p := &fakeProvider{text: "   "}
	s := NewIntakeService(p, nil)

	if got := s.Respond(context.Background(), "", userTurn("hi"), "", "chat"); got == "" {
		t.Fatal("reply is empty after blank completion")
	}
}

func TestRespondNilProviderExtractMode(t *testing.T) {
	s := NewIntakeService(nil, nil)

	got := s.Respond(context.Background(), "", userTurn("what did you find?"), "some uploaded text", "extract")
	if got != llm.FallbackExtraction {
		t.Fatalf("reply = %q, want the fixed extraction fallback", got)
	}
}

func TestRespondExtractModeBuildsExtractionPrompt(t *testing.T) {
	p := &fakeProvider{text: "extracted facts"}
	s := NewIntakeService(p, nil)

	s.Respond(context.Background(), "", userTurn("summarize"), "Client: Jane Doe", "extract")
	if !strings.Contains(p.lastSystem, "Client: Jane Doe") {
		t.Fatalf("system prompt does not embed the uploaded text: %q", p.lastSystem)
	}
	if !strings.Contains(p.lastSystem, "Client Name") {
		t.Fatalf("system prompt is not the extraction prompt: %q", p.lastSystem)
	}
}

func TestRespondWindowsLongHistory(t *testing.T) {
	p := &fakeProvider{text: "ok"}
	s := NewIntakeService(p, nil)

	msgs := make([]models.Message, 9)
	for i := range msgs {
		msgs[i] = models.Message{Role: models.RoleUser, Content: "turn"}
	}
	msgs[len(msgs)-1].Content = "latest"

	s.Respond(context.Background(), "", msgs, "", "chat")
	if p.lastUser != "latest" {
		t.Fatalf("latest user turn = %q", p.lastUser)
	}
}

func TestPersistExchangeCreatesChatWhenNoneExists(t *testing.T) {
	store := newFakeStore()
	s := NewIntakeService(nil, store)

	s.persistExchange("user-1", userTurn("hello"), "hi there")

	if len(store.chats) != 1 {
		t.Fatalf("got %d chats, want 1", len(store.chats))
	}
	chat := store.chats[0]
	if chat.UserID != "user-1" {
		t.Fatalf("chat user = %q", chat.UserID)
	}
	if !strings.HasPrefix(chat.Title, "Chat ") {
		t.Fatalf("chat title = %q", chat.Title)
	}
	if len(chat.Messages) != 2 {
		t.Fatalf("got %d messages, want user turn + assistant reply", len(chat.Messages))
	}
	if last := chat.Messages[len(chat.Messages)-1]; last.Role != models.RoleAssistant || last.Content != "hi there" {
		t.Fatalf("last message = %+v", last)
	}
}

func TestPersistExchangeAppendsToLatestChat(t *testing.T) {
	store := newFakeStore()
	existing := &models.Chat{
		ID:     "chat-1",
		UserID: "user-1",
		Messages: []models.Message{
			{Role: models.RoleUser, Content: "earlier"},
			{Role: models.RoleAssistant, Content: "earlier reply"},
		},
	}
	store.chats = append(store.chats, existing)

	s := NewIntakeService(nil, store)
	s.persistExchange("user-1", userTurn("next question"), "next answer")

	if len(store.chats) != 1 {
		t.Fatalf("a new chat was created instead of appending")
	}
	msgs := store.chats[0].Messages
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want prior 2 plus new exchange", len(msgs))
	}
	if msgs[2].Content != "next question" || msgs[3].Content != "next answer" {
		t.Fatalf("appended exchange = %q / %q", msgs[2].Content, msgs[3].Content)
	}
}

func TestPersistExchangeLookupFailureDoesNotPanic(t *testing.T) {
	store := newFakeStore()
	store.latestErr = errors.New("connection refused")

	s := NewIntakeService(nil, store)
	s.persistExchange("user-1", userTurn("hello"), "hi")

	if len(store.chats) != 0 {
		t.Fatalf("chat written despite lookup failure")
	}
}

func TestPersistExchangeStoresDraftLikeReplies(t *testing.T) {
	store := newFakeStore()
	s := NewIntakeService(nil, store)

	draft := "DRAFT - FOR ATTORNEY REVIEW\n" + strings.Repeat("This letter concerns the custody matter. ", 10)
	s.persistExchange("user-1", userTurn("draft it"), draft)

	if len(store.docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(store.docs))
	}
	doc := store.docs[0]
	if doc.DocumentType != "draft" || doc.Content != draft {
		t.Fatalf("stored document = %+v", doc)
	}

	// short replies are not drafts even with keywords
	s.persistExchange("user-1", userTurn("hi"), "Sure, a letter works.")
	if len(store.docs) != 1 {
		t.Fatalf("short reply stored as document")
	}
}

func TestLooksLikeDocument(t *testing.T) {
	long := strings.Repeat("x", docLengthThreshold+1)
	if looksLikeDocument(long) {
		t.Fatal("long text without keywords flagged as document")
	}
	if !looksLikeDocument(long + " agreement") {
		t.Fatal("long text with keyword not flagged")
	}
	if looksLikeDocument("short letter") {
		t.Fatal("short text flagged as document")
	}
}
