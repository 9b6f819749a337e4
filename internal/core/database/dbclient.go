package db

import (
	"context"

	"github.com/smartprobono/intake-api/internal/models"
)

// DbClient defines all persistence operations the services need.
// Higher layers never depend on a specific database; every write on the chat
// hot path is best-effort and its failure must never surface to the caller.
type DbClient interface {
	CreateUser(ctx context.Context, user *models.User) (err error)
	GetUserByEmail(ctx context.Context, email string) (user *models.User, err error)

	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	EnsureProfile(ctx context.Context, profile *models.Profile) error

	CreateChat(ctx context.Context, chat *models.Chat) error
	GetLatestChatByUser(ctx context.Context, userID string) (*models.Chat, error)
	UpdateChatMessages(ctx context.Context, chatID string, messages []models.Message) error
	ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error)

	InsertGeneratedDocument(ctx context.Context, doc *models.GeneratedDocument) error
	ListGeneratedDocumentsByUser(ctx context.Context, userID string) ([]models.GeneratedDocument, error)

	InsertAnalyticsEvent(ctx context.Context, ev *models.AnalyticsEvent) error

	Close() error
}
