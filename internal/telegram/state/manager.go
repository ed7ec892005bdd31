package state

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/futig/blog-generator/internal/view"
	"github.com/patrickmn/go-cache"
)

// SessionOpener resolves a page session id, starting a new session when the
// id is empty or expired.
type SessionOpener interface {
	OpenSession(ctx context.Context, id string) (string, view.State, error)
}

// Manager maps telegram chats to page sessions. Each chat owns one screen.
// A chat idle for longer than ttl loses its mapping along with its session.
type Manager struct {
	opener SessionOpener

	mu    sync.Mutex
	chats *cache.Cache
}

// NewManager creates a new state manager
func NewManager(opener SessionOpener, ttl, cleanupInterval time.Duration) *Manager {
	return &Manager{
		opener: opener,
		chats:  cache.New(ttl, cleanupInterval),
	}
}

// Session returns the page session of the chat, opening a new one when the
// chat has none or its session expired.
func (m *Manager) Session(ctx context.Context, chatID int64) (string, view.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strconv.FormatInt(chatID, 10)
	known := ""
	if item, ok := m.chats.Get(key); ok {
		known, _ = item.(string)
	}

	id, state, err := m.opener.OpenSession(ctx, known)
	if err != nil {
		return "", view.State{}, fmt.Errorf("open session for chat %d: %w", chatID, err)
	}

	m.chats.SetDefault(key, id)
	return id, state, nil
}

// Count returns the number of chats with a session.
func (m *Manager) Count() int {
	return m.chats.ItemCount()
}
