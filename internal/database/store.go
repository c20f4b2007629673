package database

import (
	"context"
	"fmt"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/store"
	"github.com/vandana2004/CookingBlog/internal/store/mongostore"
	"github.com/vandana2004/CookingBlog/internal/store/sqlstore"
)

// OpenStore connects the document store selected by cfg.StoreDriver
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s, err := mongostore.New(ctx, client, cfg.MongoDatabase)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return s, nil
	case config.DriverPostgres, config.DriverSQLite:
		db, err := NewGorm(cfg)
		if err != nil {
			return nil, err
		}
		s, err := sqlstore.New(db)
		if err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
