package handlers

import (
	"context"
	"sync"

	"github.com/smartprobono/intake-api/internal/models"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Complete(ctx context.Context, system string, history []models.Message, userMessage string) (string, error) {
	return s.text, s.err
}

// memStore is an in-memory DbClient for handler tests.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	profiles map[string]*models.Profile
	chats    []models.Chat
	docs     []models.GeneratedDocument
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*models.User),
		profiles: make(map[string]*models.Profile),
	}
}

func (m *memStore) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return errDuplicate
	}
	m.users[user.Email] = user
	return nil
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[email], nil
}

func (m *memStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[id], nil
}

func (m *memStore) EnsureProfile(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profile.ID]; !ok {
		m.profiles[profile.ID] = profile
	}
	return nil
}

func (m *memStore) CreateChat(ctx context.Context, chat *models.Chat) error { return nil }

func (m *memStore) GetLatestChatByUser(ctx context.Context, userID string) (*models.Chat, error) {
	return nil, nil
}

func (m *memStore) UpdateChatMessages(ctx context.Context, chatID string, messages []models.Message) error {
	return nil
}

func (m *memStore) ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chats, nil
}

func (m *memStore) InsertGeneratedDocument(ctx context.Context, doc *models.GeneratedDocument) error {
	return nil
}

func (m *memStore) ListGeneratedDocumentsByUser(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs, nil
}

func (m *memStore) InsertAnalyticsEvent(ctx context.Context, ev *models.AnalyticsEvent) error {
	return nil
}

func (m *memStore) Close() error { return nil }

type constError string

func (e constError) Error() string { return string(e) }

const errDuplicate = constError("duplicate key value violates unique constraint")
