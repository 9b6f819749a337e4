package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/core/llm"
	"github.com/smartprobono/intake-api/internal/core/prompt"
	"github.com/smartprobono/intake-api/internal/models"
)

// docKeywords gates the best-effort GeneratedDocument insert: a long reply
// containing any of these is assumed to be a draft worth keeping.
var docKeywords = []string{"DRAFT", "letter", "motion", "agreement"}

const docLengthThreshold = 200

// IntakeService resolves a chat turn to reply text. The configured provider
// may be nil, in which case every turn is answered by the rule-based
// responder. Persistence is best-effort and fully decoupled from the reply.
type IntakeService struct {
	provider llm.Provider
	store    db.DbClient
}

func NewIntakeService(provider llm.Provider, store db.DbClient) *IntakeService {
	return &IntakeService{provider: provider, store: store}
}

// Respond turns the conversation so far into reply text. It never fails and
// never returns empty text: any provider error or empty completion falls
// back to the rule-based responder.
func (s *IntakeService) Respond(ctx context.Context, userID string, messages []models.Message, uploadedText, mode string) string {
	window := llm.Window(messages)
	userMessage := window[len(window)-1].Content

	var system string
	if mode == "extract" && uploadedText != "" {
		system = prompt.Extraction(uploadedText)
	} else {
		system = prompt.Chat(prompt.ContextLines(window), uploadedText)
	}

	text := s.complete(ctx, system, window, userMessage, mode)

	if userID != "" && s.store != nil {
		go s.persistExchange(userID, window, text)
	}

	return text
}

func (s *IntakeService) complete(ctx context.Context, system string, window []models.Message, userMessage, mode string) string {
	if s.provider == nil {
		return llm.Fallback(userMessage, mode)
	}
	text, err := s.provider.Complete(ctx, system, window[:len(window)-1], userMessage)
	if err != nil {
		log.Printf("provider completion failed, using fallback: %v", err)
		return llm.Fallback(userMessage, mode)
	}
	if strings.TrimSpace(text) == "" {
		log.Println("provider returned empty content, using fallback")
		return llm.Fallback(userMessage, mode)
	}
	return text
}

// persistExchange appends the exchange to the user's most recently updated
// chat, creating one when none exists, and opportunistically stores the
// reply as a GeneratedDocument when it looks like a draft. Failures are
// logged and discarded; the reply has already been sent.
//
// Selecting "the latest chat" rather than an explicit chat id means two
// concurrent conversations from the same user can interleave into one
// transcript. Known limitation, kept for parity with the product behavior.
func (s *IntakeService) persistExchange(userID string, window []models.Message, responseText string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	assistant := models.Message{
		Role:      models.RoleAssistant,
		Content:   responseText,
		Timestamp: time.Now(),
	}

	chat, err := s.store.GetLatestChatByUser(ctx, userID)
	switch {
	case err != nil:
		log.Printf("chat lookup failed (non-critical): %v", err)
	case chat == nil:
		now := time.Now()
		err := s.store.CreateChat(ctx, &models.Chat{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     "Chat " + now.Format("1/2/2006"),
			Messages:  append(append([]models.Message(nil), window...), assistant),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Printf("chat create failed (non-critical): %v", err)
		}
	default:
		msgs := append(chat.Messages, window[len(window)-1], assistant)
		if err := s.store.UpdateChatMessages(ctx, chat.ID, msgs); err != nil {
			log.Printf("chat update failed (non-critical): %v", err)
		}
	}

	if looksLikeDocument(responseText) {
		doc := &models.GeneratedDocument{
			ID:           uuid.NewString(),
			UserID:       userID,
			Title:        "Generated Document",
			Content:      responseText,
			DocumentType: "draft",
			CreatedAt:    time.Now(),
		}
		if err := s.store.InsertGeneratedDocument(ctx, doc); err != nil {
			log.Printf("document insert failed (non-critical): %v", err)
		}
	}
}

func looksLikeDocument(text string) bool {
	if len(text) <= docLengthThreshold {
		return false
	}
	for _, kw := range docKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
