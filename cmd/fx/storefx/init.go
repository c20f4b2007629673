package storefx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/database"
	"github.com/vandana2004/CookingBlog/internal/store"
)

const connectTimeout = 30 * time.Second

var Module = fx.Provide(provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config) (store.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	st, err := database.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Printf("[Store] Closing %s store", cfg.StoreDriver)
			return st.Close(ctx)
		},
	})
	return st, nil
}
