package services

import (
	"context"
	"sync"

	"github.com/smartprobono/intake-api/internal/models"
)

// fakeProvider returns a canned completion or error.
type fakeProvider struct {
	text string
	err  error

	mu         sync.Mutex
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) Complete(ctx context.Context, system string, history []models.Message, userMessage string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastSystem = system
	f.lastUser = userMessage
	return f.text, f.err
}

// fakeStore is an in-memory DbClient.
type fakeStore struct {
	mu    sync.Mutex
	users map[string]*models.User
	chats []*models.Chat
	docs  []*models.GeneratedDocument

	latestErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*models.User)}
}

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Email] = user
	return nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[email], nil
}

func (f *fakeStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeStore) EnsureProfile(ctx context.Context, profile *models.Profile) error {
	return nil
}

func (f *fakeStore) CreateChat(ctx context.Context, chat *models.Chat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chats = append(f.chats, chat)
	return nil
}

func (f *fakeStore) GetLatestChatByUser(ctx context.Context, userID string) (*models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	for i := len(f.chats) - 1; i >= 0; i-- {
		if f.chats[i].UserID == userID {
			return f.chats[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateChatMessages(ctx context.Context, chatID string, messages []models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.chats {
		if c.ID == chatID {
			c.Messages = messages
			return nil
		}
	}
	return nil
}

func (f *fakeStore) ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Chat
	for _, c := range f.chats {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertGeneratedDocument(ctx context.Context, doc *models.GeneratedDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeStore) ListGeneratedDocumentsByUser(ctx context.Context, userID string) ([]models.GeneratedDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.GeneratedDocument
	for _, d := range f.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertAnalyticsEvent(ctx context.Context, ev *models.AnalyticsEvent) error {
	return nil
}

func (f *fakeStore) Close() error { return nil }
