package repository

import (
	"context"
	"testing"
	"time"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionCache_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(time.Minute, time.Minute, zap.NewNop())

	s := view.NewSession("abc")
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionCache_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(time.Minute, time.Minute, zap.NewNop())

	require.NoError(t, repo.Create(ctx, view.NewSession("dup")))
	assert.Error(t, repo.Create(ctx, view.NewSession("dup")))
}

func TestSessionCache_Expires(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(20*time.Millisecond, time.Millisecond, zap.NewNop())

	require.NoError(t, repo.Create(ctx, view.NewSession("short")))

	// polling with Get would keep it alive, so watch the janitor instead
	assert.Eventually(t, func() bool {
		return repo.Count() == 0
	}, time.Second, 5*time.Millisecond)

	_, err := repo.Get(ctx, "short")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSessionCache_GetExtendsLifetime(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(200*time.Millisecond, 10*time.Millisecond, zap.NewNop())

	require.NoError(t, repo.Create(ctx, view.NewSession("kept")))
	for range 4 {
		time.Sleep(100 * time.Millisecond)
		_, err := repo.Get(ctx, "kept")
		require.NoError(t, err)
	}
}

func TestSessionCache_GetAfterDeleteDoesNotRevive(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(time.Minute, time.Minute, zap.NewNop())

	require.NoError(t, repo.Create(ctx, view.NewSession("gone")))
	require.NoError(t, repo.Delete(ctx, "gone"))

	_, err := repo.Get(ctx, "gone")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionCache_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionCache(time.Minute, time.Minute, zap.NewNop())

	a, b := view.NewSession("a"), view.NewSession("b")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Update(func(s view.State) view.State { return s.ToggleCredits() })

	gotB, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, gotB.Snapshot().CreditsVisible())
}
