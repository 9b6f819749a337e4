package models

import (
	"time"
)

// User represents an authenticated account.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Profile holds firm-facing account details, 1:1 with a User.
// It is created lazily the first time an authenticated request needs it.
type Profile struct {
	ID        string    `db:"id" json:"id"` // same as User.ID
	Email     string    `db:"email" json:"email"`
	FullName  string    `db:"full_name" json:"full_name"`
	FirmName  string    `db:"firm_name" json:"firm_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Message is one turn in a conversation. Ordering is insertion order
// and is never rewritten.
type Message struct {
	Role      string    `json:"role"` // "user" | "assistant" | "system"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Chat is an append-only transcript owned by exactly one user.
// Messages live in a jsonb column.
type Chat struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Messages  []Message `db:"messages" json:"messages"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// GeneratedDocument is a draft the assistant produced. Rows are inserted
// best-effort; a missing row never fails the request that produced the text.
type GeneratedDocument struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Title        string    `db:"title" json:"title"`
	Content      string    `db:"content" json:"content"`
	DocumentType string    `db:"document_type" json:"document_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AnalyticsEvent mirrors a captured product event into the database.
type AnalyticsEvent struct {
	ID         string         `db:"id" json:"id"`
	UserID     string         `db:"user_id" json:"user_id"`
	Event      string         `db:"event" json:"event"`
	Properties map[string]any `db:"properties" json:"properties"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}
