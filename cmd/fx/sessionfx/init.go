package sessionfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/database"
	"github.com/vandana2004/CookingBlog/internal/session"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(lc fx.Lifecycle, cfg *config.Config) (session.Store, error) {
	if cfg.RedisURL == "" {
		log.Printf("[Session] REDIS_URL not set, keeping notifications in memory")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}

	client, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return session.NewRedisStore(client, cfg.SessionTTL), nil
}
