package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/smartprobono/intake-api/internal/config"
	"github.com/smartprobono/intake-api/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, cfg *config.Config) (DbClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database client configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Implementing the db interface for users

func (c *DatabaseClient) CreateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	const q = `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, COALESCE($4, now()), COALESCE($5, now()))
	`
	_, err := c.db.ExecContext(ctx, q,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	return err
}

func (c *DatabaseClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`
	var u models.User
	err := c.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Implementing the db interface for profiles

func (c *DatabaseClient) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	const q = `
		SELECT id, email, full_name, firm_name, created_at
		FROM profiles WHERE id = $1
	`
	var p models.Profile
	err := c.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Email, &p.FullName, &p.FirmName, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// EnsureProfile creates the 1:1 profile row if it does not exist yet.
func (c *DatabaseClient) EnsureProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return errors.New("nil profile")
	}
	const q = `
		INSERT INTO profiles (id, email, full_name, firm_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := c.db.ExecContext(ctx, q, profile.ID, profile.Email, profile.FullName, profile.FirmName)
	return err
}

// Implementing the db interface for chats

func (c *DatabaseClient) CreateChat(ctx context.Context, chat *models.Chat) error {
	if chat == nil {
		return errors.New("nil chat")
	}
	payload, err := json.Marshal(chat.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}
	const q = `
		INSERT INTO chats (id, user_id, title, messages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), COALESCE($6, now()))
	`
	_, err = c.db.ExecContext(ctx, q,
		chat.ID, chat.UserID, chat.Title, payload, chat.CreatedAt, chat.UpdatedAt)
	return err
}

// GetLatestChatByUser returns the most recently updated chat, or nil when the
// user has none.
func (c *DatabaseClient) GetLatestChatByUser(ctx context.Context, userID string) (*models.Chat, error) {
	const q = `
		SELECT id, user_id, title, messages, created_at, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`
	var (
		chat    models.Chat
		payload []byte
	)
	err := c.db.QueryRowContext(ctx, q, userID).Scan(
		&chat.ID, &chat.UserID, &chat.Title, &payload, &chat.CreatedAt, &chat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &chat.Messages); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	return &chat, nil
}

// UpdateChatMessages replaces the transcript and bumps updated_at.
// Last write wins: there is no optimistic concurrency check.
func (c *DatabaseClient) UpdateChatMessages(ctx context.Context, chatID string, messages []models.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}
	const q = `
		UPDATE chats
		SET messages = $2, updated_at = now()
		WHERE id = $1
	`
	res, err := c.db.ExecContext(ctx, q, chatID, payload)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("chat not found: %s", chatID)
	}
	return nil
}

func (c *DatabaseClient) ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	const q = `
		SELECT id, user_id, title, messages, created_at, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Chat
	for rows.Next() {
		var (
			chat    models.Chat
			payload []byte
		)
		if err := rows.Scan(
			&chat.ID, &chat.UserID, &chat.Title, &payload, &chat.CreatedAt, &chat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &chat.Messages); err != nil {
			return nil, fmt.Errorf("unmarshal messages: %w", err)
		}
		out = append(out, chat)
	}
	return out, rows.Err()
}

// Implementing the db interface for generated documents

func (c *DatabaseClient) InsertGeneratedDocument(ctx context.Context, doc *models.GeneratedDocument) error {
	if doc == nil {
		return errors.New("nil document")
	}
	const q = `
		INSERT INTO documents (id, user_id, title, content, document_type, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
	`
	_, err := c.db.ExecContext(ctx, q,
		doc.ID, doc.UserID, doc.Title, doc.Content, doc.DocumentType, doc.CreatedAt)
	return err
}

func (c *DatabaseClient) ListGeneratedDocumentsByUser(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	const q = `
		SELECT id, user_id, title, content, document_type, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.GeneratedDocument
	for rows.Next() {
		var d models.GeneratedDocument
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Title, &d.Content, &d.DocumentType, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Implementing the db interface for analytics events

func (c *DatabaseClient) InsertAnalyticsEvent(ctx context.Context, ev *models.AnalyticsEvent) error {
	if ev == nil {
		return errors.New("nil event")
	}
	props, err := json.Marshal(ev.Properties)
	if err != nil {
		return fmt.Errorf("marshal properties: %w", err)
	}
	const q = `
		INSERT INTO analytics_events (id, user_id, event, properties, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()))
	`
	_, err = c.db.ExecContext(ctx, q, ev.ID, ev.UserID, ev.Event, props, ev.CreatedAt)
	return err
}
