package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cooking_blog:session:"

// RedisStore keeps notifications in Redis lists so they survive restarts and
// are shared between instances.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	k := redisKey(sid, key)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.RPush(ctx, k, value)
		pipe.Expire(ctx, k, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set notification %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) TakeAll(ctx context.Context, sid, key string) ([]string, error) {
	k := redisKey(sid, key)
	var values *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, k, 0, -1)
		pipe.Del(ctx, k)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to take notification %s: %w", key, err)
	}
	out := values.Val()
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func redisKey(sid, key string) string {
	return redisKeyPrefix + sid + ":" + key
}
