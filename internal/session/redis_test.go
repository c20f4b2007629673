package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandana2004/CookingBlog/internal/session"
	"github.com/vandana2004/CookingBlog/internal/testhelpers"
)

func TestRedisStore(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	s := session.NewRedisStore(client, time.Minute)
	ctx := context.Background()

	t.Run("SetReplacesAndTakeClears", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "sid-1", session.KeyInfoSubmit, "first"))
		require.NoError(t, s.Set(ctx, "sid-1", session.KeyInfoSubmit, "second"))

		got, err := s.TakeAll(ctx, "sid-1", session.KeyInfoSubmit)
		require.NoError(t, err)
		assert.Equal(t, []string{"second"}, got)

		got, err = s.TakeAll(ctx, "sid-1", session.KeyInfoSubmit)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("KeysExpire", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "sid-2", session.KeyInfoErrors, "boom"))
		ttl, err := client.TTL(ctx, "cooking_blog:session:sid-2:infoErrors").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("MissingKey", func(t *testing.T) {
		got, err := s.TakeAll(ctx, "nobody", session.KeyInfoErrors)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
