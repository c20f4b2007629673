package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetReplaces(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyInfoSubmit, "first"))
	require.NoError(t, s.Set(ctx, "sid", KeyInfoSubmit, "second"))

	got, err := s.TakeAll(ctx, "sid", KeyInfoSubmit)
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, got)

	got, err = s.TakeAll(ctx, "sid", KeyInfoSubmit)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreIsolatesSessionsAndKeys(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", KeyInfoSubmit, "for a"))
	require.NoError(t, s.Set(ctx, "b", KeyInfoErrors, "for b"))

	got, _ := s.TakeAll(ctx, "a", KeyInfoErrors)
	assert.Empty(t, got)
	got, _ = s.TakeAll(ctx, "b", KeyInfoErrors)
	assert.Equal(t, []string{"for b"}, got)
	got, _ = s.TakeAll(ctx, "a", KeyInfoSubmit)
	assert.Equal(t, []string{"for a"}, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", KeyInfoErrors, "stale"))
	now = now.Add(2 * time.Minute)

	got, err := s.TakeAll(ctx, "sid", KeyInfoErrors)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set(ctx, "old", KeyInfoErrors, "x"))
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Set(ctx, "new", KeyInfoErrors, "y"))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "sid", KeyInfoSubmit, "v")
			_, _ = s.TakeAll(ctx, "sid", KeyInfoSubmit)
		}()
	}
	wg.Wait()
}

func TestSessionBindsID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	sess := New(store, "abc")

	assert.Equal(t, "abc", sess.ID())
	require.NoError(t, sess.Set(ctx, KeyInfoSubmit, "Recipe has been added."))

	got, err := store.TakeAll(ctx, "abc", KeyInfoSubmit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Recipe has been added."}, got)
}
