package repository

import (
	"context"
	"time"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// SessionCache keeps page sessions in memory. A session expires after ttl
// without access; nothing is persisted.
type SessionCache struct {
	cache  *cache.Cache
	logger *zap.Logger
}

func NewSessionCache(ttl, cleanupInterval time.Duration, logger *zap.Logger) *SessionCache {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(id string, _ interface{}) {
		logger.Debug("page session expired", zap.String("session_id", id))
	})

	return &SessionCache{
		cache:  c,
		logger: logger,
	}
}

func (r *SessionCache) Create(ctx context.Context, session *view.Session) error {
	return r.cache.Add(session.ID, session, cache.DefaultExpiration)
}

// Get returns the session and extends its lifetime.
func (r *SessionCache) Get(ctx context.Context, id string) (*view.Session, error) {
	item, ok := r.cache.Get(id)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	session, ok := item.(*view.Session)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	// Replace fails once the session is deleted, so a lookup never revives it
	if err := r.cache.Replace(id, session, cache.DefaultExpiration); err != nil {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionCache) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

func (r *SessionCache) Count() int {
	return r.cache.ItemCount()
}
