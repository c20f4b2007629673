package assetfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/assets"
)

var Module = fx.Provide(provideAssetHost)

func provideAssetHost(cfg *config.Config) (assets.Host, error) {
	if cfg.S3Bucket == "" {
		log.Printf("[AssetHost] S3_BUCKET_NAME not set, storing uploads in %s", cfg.LocalAssetDir)
		return assets.NewLocalHost(cfg.LocalAssetDir), nil
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[AssetHost] Uploading to s3://%s (%s)", s3cfg.BucketName, s3cfg.Region)
	return assets.NewS3HostFromConfig(s3cfg, cfg), nil
}
